package symtab

import (
	"testing"

	"github.com/bel-learning/mila-compiler/internal/ir"
)

func TestTableInsertLookupClear(t *testing.T) {
	tab := New()
	slot := &ir.Alloca{}

	if tab.Declared("x") {
		t.Fatal("want x undeclared initially")
	}
	tab.Insert("x", slot, false)
	if !tab.Declared("x") {
		t.Fatal("want x declared after Insert")
	}
	entry := tab.Lookup("x")
	if entry == nil || entry.Slot != ir.Value(slot) || entry.Constant {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	tab.Clear()
	if tab.Declared("x") {
		t.Fatal("want x undeclared after Clear")
	}
	if tab.Lookup("x") != nil {
		t.Fatal("want nil lookup after Clear")
	}
}

func TestTableConstFlag(t *testing.T) {
	tab := New()
	tab.Insert("k", &ir.Alloca{}, true)
	entry := tab.Lookup("k")
	if entry == nil || !entry.Constant {
		t.Fatal("want k registered as constant")
	}
}
