// Package symtab implements the flat, function-scoped symbol table
// described in spec.md §4.3: a name resolves to a storage slot and a
// constness flag; the table is cleared at the start of every function's
// lowering pass.
package symtab

import "github.com/bel-learning/mila-compiler/internal/ir"

// Entry is what a name resolves to: the IR storage slot backing it, and
// whether it may be assigned to.
type Entry struct {
	Slot     ir.Value // an *ir.Alloca
	Constant bool
}

// Table is a flat name -> Entry mapping, owned by the compiler instance and
// cleared between functions (spec.md §3 Lifecycles).
type Table struct {
	entries map[string]*Entry
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Clear empties the table, called at the start of every function's
// lowering pass.
func (t *Table) Clear() {
	t.entries = make(map[string]*Entry)
}

// Lookup returns the entry bound to name, or nil if name is unbound.
func (t *Table) Lookup(name string) *Entry {
	return t.entries[name]
}

// Declared reports whether name is already bound in this scope.
func (t *Table) Declared(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Insert binds name to slot. The caller must check Declared first: Insert
// unconditionally overwrites, matching the compiler's fail-fast contract —
// lowering raises Redeclaration before ever calling Insert a second time for
// the same name.
func (t *Table) Insert(name string, slot ir.Value, constant bool) {
	t.entries[name] = &Entry{Slot: slot, Constant: constant}
}
