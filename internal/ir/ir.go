// Package ir implements a small, from-scratch SSA intermediate
// representation: modules own functions, functions own basic blocks, and
// every basic block ends in exactly one terminator. It plays the role
// spec.md assumes an external "IR builder library" would play — see
// DESIGN.md for why this repo does not bind to a real LLVM (the structural
// model — cursor-style builder, one insertion point, an explicit verifier —
// is grounded on the same cursor discipline a real llvm.IRBuilder gives
// you).
package ir

import "fmt"

// Type is the (very small) type system: the only first-class value type is
// a 32-bit signed integer; Void marks call results and terminators that
// produce nothing.
type Type int

const (
	I32 Type = iota
	Void
)

func (t Type) String() string {
	switch t {
	case I32:
		return "i32"
	case Void:
		return "void"
	default:
		return "?"
	}
}

// Value is anything an instruction can consume: a constant, a load result,
// an arithmetic/comparison result, or a non-void call result.
type Value interface {
	Type() Type
	ValueName() string
}

// Const is a compile-time-known 32-bit integer.
type Const struct{ Val int32 }

func (c *Const) Type() Type        { return I32 }
func (c *Const) ValueName() string { return fmt.Sprintf("%d", c.Val) }

// Alloca is a named stack slot, created in a function's entry block. It is
// not itself loaded or stored as a Value — Load and Store reference it
// directly, since this IR has no separate pointer type (the only aggregate
// concept spec.md needs is "the storage slot for this name").
type Alloca struct {
	id   int
	Name string // source-level name, for the printer
}

func (a *Alloca) Type() Type        { return I32 }
func (a *Alloca) ValueName() string { return fmt.Sprintf("%%%d", a.id) }

// Load reads the current value out of a slot.
type Load struct {
	id  int
	Src *Alloca
}

func (l *Load) Type() Type        { return I32 }
func (l *Load) ValueName() string { return fmt.Sprintf("%%%d", l.id) }

// Store writes Src into Dst. Store produces no value; assignment's
// "returns the stored value" semantics (spec.md §9 Open Questions) is
// modeled by lowering reusing the already-computed Src value, not by Store
// itself.
type Store struct {
	Src Value
	Dst *Alloca
}

// BinOp is a binary arithmetic, bitwise, or comparison instruction. Comparisons
// (Op one of Eq/Ne/Lt/Le/Gt/Ge) produce a 32-bit 0/1 result, already
// extended per spec.md §4.4 ("comparisons return 1-bit predicates extended
// to 32-bit integers").
type BinOp struct {
	id  int
	Op  string // "add" "sub" "mul" "sdiv" "srem" "and" "or" "xor" "eq" "ne" "lt" "le" "gt" "ge"
	LHS Value
	RHS Value
}

func (b *BinOp) Type() Type        { return I32 }
func (b *BinOp) ValueName() string { return fmt.Sprintf("%%%d", b.id) }

// Call invokes a function or a runtime intrinsic. ResultType is Void for
// procedures and for the `writeln`/`dec` built-ins.
type Call struct {
	id         int
	Callee     string
	Args       []Value
	ResultType Type
}

func (c *Call) Type() Type { return c.ResultType }
func (c *Call) ValueName() string {
	if c.ResultType == Void {
		return "<void>"
	}
	return fmt.Sprintf("%%%d", c.id)
}

// Arg is an incoming parameter value, the SSA counterpart of a real
// llvm.Argument: lowering stores each Arg into a local stack slot at
// function entry rather than referencing it directly thereafter, so the
// rest of the IR only ever sees Alloca/Load/Store for named values.
type Arg struct {
	index int
	Name  string
}

func (a *Arg) Type() Type        { return I32 }
func (a *Arg) ValueName() string { return fmt.Sprintf("%%arg.%s", a.Name) }

// Instruction is any non-terminator operation inside a basic block.
type Instruction interface {
	isInstruction()
}

func (*Alloca) isInstruction() {}
func (*Load) isInstruction()   {}
func (*Store) isInstruction()  {}
func (*BinOp) isInstruction()  {}
func (*Call) isInstruction()   {}

// Terminator ends a basic block: exactly one per block, per spec.md's
// "every basic block emitted during lowering ends with exactly one
// terminator" invariant.
type Terminator interface {
	isTerminator()
}

// Br is an unconditional branch.
type Br struct{ Target *BasicBlock }

// CondBr branches to True if Cond is non-zero, False otherwise.
type CondBr struct {
	Cond        Value
	True, False *BasicBlock
}

// Ret returns Val from a value-returning function.
type Ret struct{ Val Value }

// RetVoid returns from a procedure.
type RetVoid struct{}

func (*Br) isTerminator()      {}
func (*CondBr) isTerminator()  {}
func (*Ret) isTerminator()     {}
func (*RetVoid) isTerminator() {}

// BasicBlock is a maximal straight-line instruction sequence ending in one
// Terminator (nil until the builder sets it).
type BasicBlock struct {
	Name   string
	Instrs []Instruction
	Term   Terminator
	fn     *Function
}

// Terminated reports whether this block already has a terminator — lowering
// must check this before emitting a fall-through branch after a branch that
// itself ended in `exit` (spec.md §4.4 Terminator discipline).
func (b *BasicBlock) Terminated() bool { return b.Term != nil }

// Function is a function or procedure: a prototype plus its basic blocks.
// Params are uniformly 32-bit integers; ReturnType is Void for procedures.
type Function struct {
	Name       string
	ParamNames []string
	Args       []*Arg
	ReturnType Type
	Blocks     []*BasicBlock

	nextValueID int
	nextBlockID int
}

// Entry returns the function's first (entry) block, or nil if none exists
// yet.
func (f *Function) Entry() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// NewBlock appends and returns a fresh, empty basic block named after hint.
func (f *Function) NewBlock(hint string) *BasicBlock {
	bb := &BasicBlock{Name: fmt.Sprintf("%s.%d", hint, f.nextBlockID), fn: f}
	f.nextBlockID++
	f.Blocks = append(f.Blocks, bb)
	return bb
}

func (f *Function) nextID() int {
	id := f.nextValueID
	f.nextValueID++
	return id
}

// Module owns an ordered set of functions.
type Module struct {
	Name      string
	Functions []*Function
	byName    map[string]*Function
}

// NewModule returns an empty Module named name.
func NewModule(name string) *Module {
	return &Module{Name: name, byName: make(map[string]*Function)}
}

// GetFunction returns the function named name, or nil.
func (m *Module) GetFunction(name string) *Function {
	return m.byName[name]
}

// NewFunction declares a function (its prototype) in the module. It is an
// error, surfaced by the caller, to declare the same name twice with a
// conflicting signature; NewFunction itself does not check this — lowering
// looks up an existing prototype before calling it, exactly mirroring
// "forward declaration, then definition".
func (m *Module) NewFunction(name string, paramNames []string, ret Type) *Function {
	fn := &Function{Name: name, ParamNames: paramNames, ReturnType: ret}
	fn.Args = make([]*Arg, len(paramNames))
	for i, p := range paramNames {
		fn.Args[i] = &Arg{index: i, Name: p}
	}
	m.Functions = append(m.Functions, fn)
	m.byName[name] = fn
	return fn
}
