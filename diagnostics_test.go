package starkgen

import (
	"testing"
)

func TestPosString(t *testing.T) {
	tests := []struct {
		name string
		pos  Pos
		want string
	}{
		{"origin", Pos{}, "0:0"},
		{"first line", Pos{Offset: 0, Line: 1, Col: 1}, "1:1"},
		{"deep in the file", Pos{Offset: 812, Line: 42, Col: 17}, "42:17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	t.Run("carries position and message", func(t *testing.T) {
		d := Diagnostic{
			Message: "Could not find serialization for type `MyType`",
			Pos:     Pos{Offset: 90, Line: 7, Col: 13},
		}
		want := "7:13: Could not find serialization for type `MyType`"
		if got := d.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("offset does not leak into the rendering", func(t *testing.T) {
		a := Diagnostic{Message: "m", Pos: Pos{Offset: 1, Line: 2, Col: 3}}
		b := Diagnostic{Message: "m", Pos: Pos{Offset: 99, Line: 2, Col: 3}}
		if a.String() != b.String() {
			t.Errorf("Expected identical renderings, got %q and %q", a.String(), b.String())
		}
	})
}
