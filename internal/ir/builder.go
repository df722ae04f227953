package ir

// Builder is a cursor-style instruction emitter: it has exactly one current
// insertion block at a time, mirroring an LLVM-style IRBuilder. Only the
// current lowering call may mutate it (spec.md §5).
type Builder struct {
	fn    *Function
	block *BasicBlock
}

// NewBuilder returns a Builder with no function selected yet.
func NewBuilder() *Builder { return &Builder{} }

// SetFunction selects fn as the function subsequent instructions are
// emitted into; it does not change the insertion block.
func (b *Builder) SetFunction(fn *Function) { b.fn = fn }

// SetInsertPoint moves the cursor to bb. Lowering is responsible for never
// emitting into a block after its terminator is set.
func (b *Builder) SetInsertPoint(bb *BasicBlock) { b.block = bb }

// Block returns the current insertion block.
func (b *Builder) Block() *BasicBlock { return b.block }

// Terminated reports whether the current insertion block already has a
// terminator.
func (b *Builder) Terminated() bool { return b.block.Terminated() }

func (b *Builder) emit(i Instruction) {
	b.block.Instrs = append(b.block.Instrs, i)
}

// CreateAlloca allocates a stack slot named for a source identifier and
// appends it to the function's entry block (lowering always allocates
// locals there, per spec.md §4.4), regardless of the current insertion
// point.
func (b *Builder) CreateAlloca(name string) *Alloca {
	a := &Alloca{id: b.fn.nextID(), Name: name}
	entry := b.fn.Entry()
	entry.Instrs = append(entry.Instrs, a)
	return a
}

// CreateLoad reads the current value out of slot.
func (b *Builder) CreateLoad(slot *Alloca) *Load {
	l := &Load{id: b.fn.nextID(), Src: slot}
	b.emit(l)
	return l
}

// CreateStore writes v into slot.
func (b *Builder) CreateStore(v Value, slot *Alloca) {
	b.emit(&Store{Src: v, Dst: slot})
}

// CreateBinOp emits an arithmetic or bitwise instruction
// (add/sub/mul/sdiv/srem/and/or/xor).
func (b *Builder) CreateBinOp(op string, lhs, rhs Value) *BinOp {
	v := &BinOp{id: b.fn.nextID(), Op: op, LHS: lhs, RHS: rhs}
	b.emit(v)
	return v
}

// CreateICmp emits a comparison (one of "eq" "ne" "lt" "le" "gt" "ge"),
// already modeled as producing a 32-bit 0/1 result per spec.md §4.4.
func (b *Builder) CreateICmp(cond string, lhs, rhs Value) *BinOp {
	return b.CreateBinOp(cond, lhs, rhs)
}

// CreateCall emits a call to callee with args, producing a value of
// resultType (Void for procedures and for `writeln`/`dec`).
func (b *Builder) CreateCall(callee string, args []Value, resultType Type) *Call {
	c := &Call{Callee: callee, Args: args, ResultType: resultType}
	if resultType != Void {
		c.id = b.fn.nextID()
	}
	b.emit(c)
	return c
}

// CreateBr terminates the current block with an unconditional branch, but
// only if the block is not already terminated — lowering must check this
// itself before calling (spec.md §4.4's fall-through-after-exit rule); on an
// already-terminated block the call is a no-op, so the existing terminator
// is never overwritten.
func (b *Builder) CreateBr(target *BasicBlock) {
	if b.block.Terminated() {
		return
	}
	b.block.Term = &Br{Target: target}
}

// CreateCondBr terminates the current block with a conditional branch.
func (b *Builder) CreateCondBr(cond Value, trueBB, falseBB *BasicBlock) {
	if b.block.Terminated() {
		return
	}
	b.block.Term = &CondBr{Cond: cond, True: trueBB, False: falseBB}
}

// CreateRet terminates the current block returning val.
func (b *Builder) CreateRet(val Value) {
	if b.block.Terminated() {
		return
	}
	b.block.Term = &Ret{Val: val}
}

// CreateRetVoid terminates the current block with a void return.
func (b *Builder) CreateRetVoid() {
	if b.block.Terminated() {
		return
	}
	b.block.Term = &RetVoid{}
}
