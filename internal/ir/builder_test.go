package ir

import "testing"

func TestBuilderCreateAllocaAlwaysTargetsEntry(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", nil, Void)
	entry := fn.NewBlock("entry")
	other := fn.NewBlock("other")

	b := NewBuilder()
	b.SetFunction(fn)
	b.SetInsertPoint(other)

	b.CreateAlloca("x")

	if len(entry.Instrs) != 1 {
		t.Fatalf("want alloca appended to entry block, got %d instrs in entry", len(entry.Instrs))
	}
	if len(other.Instrs) != 0 {
		t.Fatalf("want no instrs in the current insertion block, got %d", len(other.Instrs))
	}
}

func TestBuilderDoesNotDoubleTerminate(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", nil, Void)
	bb := fn.NewBlock("entry")
	target := fn.NewBlock("target")

	b := NewBuilder()
	b.SetFunction(fn)
	b.SetInsertPoint(bb)

	b.CreateRetVoid()
	b.CreateBr(target) // must be a no-op; bb is already terminated

	if _, ok := bb.Term.(*RetVoid); !ok {
		t.Fatalf("want the first terminator (RetVoid) to stick, got %T", bb.Term)
	}
}

func TestBuilderCallResultNaming(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", nil, I32)
	bb := fn.NewBlock("entry")

	b := NewBuilder()
	b.SetFunction(fn)
	b.SetInsertPoint(bb)

	voidCall := b.CreateCall("writeln", []Value{&Const{Val: 1}}, Void)
	if voidCall.ValueName() != "<void>" {
		t.Fatalf("want void call to render as <void>, got %q", voidCall.ValueName())
	}

	valueCall := b.CreateCall("readln", []Value{&Alloca{}}, I32)
	if valueCall.ValueName() == "<void>" {
		t.Fatal("want a value-producing call to have a real SSA name")
	}
}
