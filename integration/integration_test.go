package integration

import (
	"strings"
	"sync"
	"testing"

	starkgen "github.com/branched-services/go-starkgen"
	"github.com/branched-services/go-starkgen/cairo"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// A contract exercising the whole pipeline: a plain use item, storage,
// an external entry point with parameters, and a view entry point with
// a return value.
const tokenContract = `#[contract]
mod token {
    use array::array_new;

    struct Storage {
        balance: felt,
    }

    #[external]
    fn transfer(to: felt, amount: u128) {
        send(to, amount)
    }

    #[view]
    fn get_balance() -> felt {
        balance::read()
    }
}
`

func expandToken(t *testing.T) starkgen.Result {
	t.Helper()
	file, err := cairo.Parse(tokenContract)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	mods := file.Modules()
	if len(mods) != 1 {
		t.Fatalf("Expected 1 module, got %d", len(mods))
	}
	res := starkgen.NewExpander().Expand(mods[0])
	if res.Outcome != starkgen.OutcomeReplace {
		t.Fatalf("Expected OutcomeReplace, got %s", res.Outcome)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", res.Diagnostics)
	}
	return res
}

func TestExpandTokenContract(t *testing.T) {
	res := expandToken(t)
	content := res.Generated.Content
	t.Logf("Generated %d bytes", len(content))

	t.Run("wrappers sit inside the external module", func(t *testing.T) {
		for _, line := range []string{
			"        fn transfer(mut data: Array<felt>) -> Array<felt> {",
			"        fn get_balance(mut data: Array<felt>) -> Array<felt> {",
		} {
			if !strings.Contains(content, line) {
				t.Errorf("Expected line %q in:\n%s", line, content)
			}
		}
	})

	t.Run("abi trait lists both declarations", func(t *testing.T) {
		for _, line := range []string{
			"        fn transfer(to: felt, amount: u128);",
			"        fn get_balance() -> felt;",
		} {
			if !strings.Contains(content, line) {
				t.Errorf("Expected line %q in:\n%s", line, content)
			}
		}
	})

	t.Run("original items survive verbatim", func(t *testing.T) {
		for _, text := range []string{
			"    use array::array_new;",
			"    struct Storage {",
			"        balance: felt,",
			"    #[external]",
			"    #[view]",
		} {
			if !strings.Contains(content, text) {
				t.Errorf("Expected %q in:\n%s", text, content)
			}
		}
	})

	t.Run("void entry point skips the result binding", func(t *testing.T) {
		if !strings.Contains(content, "super::transfer(__arg_to, __arg_amount);") {
			t.Errorf("Expected the forwarding call in:\n%s", content)
		}
		if strings.Contains(content, "let res = super::transfer") {
			t.Error("Expected no result binding for a void entry point")
		}
	})

	t.Run("returning entry point serializes its result", func(t *testing.T) {
		if !strings.Contains(content, "let res = super::get_balance();") {
			t.Errorf("Expected the result binding in:\n%s", content)
		}
		if !strings.Contains(content, "serde::serialize_felt(arr, res);") {
			t.Errorf("Expected the result serialization in:\n%s", content)
		}
	})

	t.Run("content is a fixed point of Format", func(t *testing.T) {
		if starkgen.Format(content) != content {
			t.Error("Expected formatting to be stable")
		}
	})
}

func TestStorageAddressDerivation(t *testing.T) {
	res := expandToken(t)
	content := res.Generated.Content

	// Recompute the address the long way around
	h := crypto.Keccak256([]byte("balance"))
	h[0] &= 0x03
	want := new(uint256.Int).SetBytes(h)

	addr := starkgen.StarknetKeccak([]byte("balance"))
	if !addr.Eq(want) {
		t.Fatalf("Expected %s, got %s", want.Hex(), addr.Hex())
	}
	if addr.BitLen() > starkgen.AddressBits {
		t.Errorf("Expected at most %d bits, got %d", starkgen.AddressBits, addr.BitLen())
	}

	lit := starkgen.StorageAddressLiteral(addr)
	t.Logf("balance lives at %s", lit)

	t.Run("accessors read and write the same address", func(t *testing.T) {
		if got := strings.Count(content, lit); got != 2 {
			t.Errorf("Expected the address twice, got %d occurrences", got)
		}
	})

	t.Run("accessors precede the generated module", func(t *testing.T) {
		accessor := strings.Index(content, "mod balance {")
		marker := strings.Index(content, "#[generated_contract]")
		if accessor < 0 || marker < 0 {
			t.Fatalf("Expected accessor and marker in:\n%s", content)
		}
		if accessor > marker {
			t.Error("Expected storage accessors before the generated module")
		}
	})
}

func TestExpandOutcomesEndToEnd(t *testing.T) {
	exp := starkgen.NewExpander()

	t.Run("module without the contract attribute is untouched", func(t *testing.T) {
		file := cairo.MustParse("mod helpers {\n    fn id(x: felt) -> felt {\n        x\n    }\n}\n")
		res := exp.Expand(file.Modules()[0])
		if res.Outcome != starkgen.OutcomeNoOp {
			t.Errorf("Expected OutcomeNoOp, got %s", res.Outcome)
		}
		if res.DiscardOriginal() {
			t.Error("Expected the original to be kept")
		}
	})

	t.Run("contract without body is rejected", func(t *testing.T) {
		file := cairo.MustParse("#[contract]\nmod empty;\n")
		res := exp.Expand(file.Modules()[0])
		if res.Outcome != starkgen.OutcomeReject {
			t.Fatalf("Expected OutcomeReject, got %s", res.Outcome)
		}
		if len(res.Diagnostics) != 1 {
			t.Fatalf("Expected 1 diagnostic, got %d", len(res.Diagnostics))
		}
		if res.Diagnostics[0].Message != "Contracts without body are not supported." {
			t.Errorf("Expected the rejection message, got %q", res.Diagnostics[0].Message)
		}
	})
}

func TestDiagnosticsKeepSourceOrder(t *testing.T) {
	src := `#[contract]
mod broken {
    #[external]
    fn first(a: Missing) {
        noop(a)
    }

    #[external]
    fn second(b: AlsoMissing) -> Unknown {
        noop(b)
    }
}
`
	file := cairo.MustParse(src)
	res := starkgen.NewExpander().Expand(file.Modules()[0])
	if res.Outcome != starkgen.OutcomeReplace {
		t.Fatalf("Expected OutcomeReplace despite diagnostics, got %s", res.Outcome)
	}
	if len(res.Diagnostics) != 3 {
		t.Fatalf("Expected 3 diagnostics, got %d: %v", len(res.Diagnostics), res.Diagnostics)
	}
	want := []string{
		"Could not find serialization for type `Missing`",
		"Could not find serialization for type `AlsoMissing`",
		"Could not find serialization for type `Unknown`",
	}
	for i, w := range want {
		if res.Diagnostics[i].Message != w {
			t.Errorf("Diagnostic %d: expected %q, got %q", i, w, res.Diagnostics[i].Message)
		}
	}
	for i := 1; i < len(res.Diagnostics); i++ {
		if res.Diagnostics[i].Pos.Offset <= res.Diagnostics[i-1].Pos.Offset {
			t.Errorf("Expected diagnostics in source order, got %v", res.Diagnostics)
		}
	}

	t.Run("declarations stay listed, wrappers are withheld", func(t *testing.T) {
		content := res.Generated.Content
		if !strings.Contains(content, "fn first(a: Missing);") {
			t.Errorf("Expected the declaration listed in:\n%s", content)
		}
		if strings.Contains(content, "super::first") || strings.Contains(content, "super::second") {
			t.Error("Expected no wrappers for failing entry points")
		}
	})
}

func TestConcurrentExpansion(t *testing.T) {
	file, err := cairo.Parse(tokenContract)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	module := file.Modules()[0]
	exp := starkgen.NewExpander()
	want := exp.Expand(module).Generated.Content

	const workers = 8
	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = exp.Expand(module).Generated.Content
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("Worker %d: expected identical output", i)
		}
	}
}

func TestMultipleContractsInOneFile(t *testing.T) {
	src := `#[contract]
mod alpha {
    #[external]
    fn ping() {
        pong()
    }
}

#[contract]
mod beta {
    struct Storage {
        flag: felt,
    }
}
`
	file := cairo.MustParse(src)
	mods := file.Modules()
	if len(mods) != 2 {
		t.Fatalf("Expected 2 modules, got %d", len(mods))
	}
	exp := starkgen.NewExpander()

	first := exp.Expand(mods[0])
	second := exp.Expand(mods[1])

	if !strings.Contains(first.Generated.Content, "mod alpha {") {
		t.Error("Expected alpha in the first expansion")
	}
	if strings.Contains(first.Generated.Content, "beta") {
		t.Error("Expected no beta leakage into alpha")
	}
	if !strings.Contains(second.Generated.Content, "mod flag {") {
		t.Error("Expected beta's storage accessors")
	}
	if strings.Contains(second.Generated.Content, "ping") {
		t.Error("Expected no alpha leakage into beta")
	}
}
