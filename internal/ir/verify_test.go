package ir

import "testing"

func TestVerifyRejectsMissingTerminator(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", nil, Void)
	fn.NewBlock("entry") // never terminated

	if err := Verify(fn); err == nil {
		t.Fatal("expected a VerifyError for a block with no terminator")
	}
}

func TestVerifyRejectsBranchOutsideFunction(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", nil, Void)
	entry := fn.NewBlock("entry")

	other := m.NewFunction("g", nil, Void)
	foreign := other.NewBlock("entry")
	entry.Term = &Br{Target: foreign}

	if err := Verify(fn); err == nil {
		t.Fatal("expected a VerifyError for a branch target outside the function")
	}
}

func TestVerifyAcceptsWellFormedFunction(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", nil, Void)
	entry := fn.NewBlock("entry")
	entry.Term = &RetVoid{}

	if err := Verify(fn); err != nil {
		t.Fatalf("unexpected VerifyError: %v", err)
	}
}
