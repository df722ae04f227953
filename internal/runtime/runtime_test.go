package runtime

import (
	"testing"

	"github.com/bel-learning/mila-compiler/internal/ir"
)

func TestBuiltinsCoversWritelnReadlnDec(t *testing.T) {
	want := map[string]Signature{
		"writeln": {Name: "writeln", Arity: 1, Result: ir.Void},
		"readln":  {Name: "readln", Arity: 1, Result: ir.I32},
		"dec":     {Name: "dec", Arity: 1, Result: ir.Void, Intrinsic: true},
	}

	got := Builtins()
	if len(got) != len(want) {
		t.Fatalf("want %d builtins, got %d", len(want), len(got))
	}
	for _, sig := range got {
		if sig != want[sig.Name] {
			t.Fatalf("builtin %q = %+v, want %+v", sig.Name, sig, want[sig.Name])
		}
	}
}

func TestLookupFindsBuiltinsOnly(t *testing.T) {
	sig, ok := Lookup("dec")
	if !ok || !sig.Intrinsic {
		t.Fatalf("want dec to be a found intrinsic, got %+v, ok=%v", sig, ok)
	}

	if _, ok := Lookup("not_a_builtin"); ok {
		t.Fatal("want unknown name to miss")
	}
}
