package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	starkgen "github.com/branched-services/go-starkgen"
	"github.com/branched-services/go-starkgen/cairo"
)

func expandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <file>...",
		Short: "Expand contract modules and write generated sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args, true)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for generated files (default: next to the source)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when expansion reports diagnostics")
	cmd.Flags().BoolVar(&format, "format", true, "reindent generated output")
	return cmd
}

// runExpand expands every named file with one shared expander. With
// write set, expanded sources land next to their inputs or in the
// configured output directory.
func runExpand(paths []string, write bool) error {
	if write && cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
	}
	exp := newExpander()
	reported := false
	for _, path := range paths {
		diags, err := expandFile(exp, path, write)
		if err != nil {
			return err
		}
		if len(diags) > 0 {
			reported = true
		}
	}
	if reported && cfg.Strict {
		return fmt.Errorf("expansion reported diagnostics")
	}
	return nil
}

// newExpander builds the expander a run shares across files.
func newExpander() *starkgen.Expander {
	if cfg.Format {
		return starkgen.NewExpander()
	}
	identity := func(s string) string { return s }
	return starkgen.NewExpander(starkgen.WithFormatter(identity))
}

// expandFile expands one source file and prints its diagnostics.
func expandFile(exp *starkgen.Expander, path string, write bool) ([]starkgen.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src := string(data)

	out, diags, err := expandSource(src, exp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, cairo.WrapWithSource(err, src))
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s:%s\n", path, d)
	}
	logger.Debug().Str("file", path).Int("diagnostics", len(diags)).Msg("expanded")

	if !write {
		return diags, nil
	}
	dest := outputPath(path)
	if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
		return nil, err
	}
	logger.Info().Str("file", dest).Msg("wrote")
	return diags, nil
}

// expandSource expands every top-level contract module in src.
// Replaced modules are spliced out in favor of their generated
// content; every other byte of the input is kept.
func expandSource(src string, exp *starkgen.Expander) (string, []starkgen.Diagnostic, error) {
	file, err := cairo.Parse(src)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	var diags []starkgen.Diagnostic
	prev := 0
	for _, m := range file.Modules() {
		res := exp.Expand(m)
		diags = append(diags, res.Diagnostics...)
		if !res.DiscardOriginal() {
			continue
		}
		start := m.Pos().Offset
		b.WriteString(src[prev:start])
		b.WriteString(res.Generated.Content)
		prev = start + len(m.Text())
	}
	b.WriteString(src[prev:])
	return b.String(), diags, nil
}

// outputPath maps a source path to its generated file path.
func outputPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + ".gen.cairo"
	if cfg.OutDir != "" {
		return filepath.Join(cfg.OutDir, name)
	}
	return filepath.Join(filepath.Dir(path), name)
}
