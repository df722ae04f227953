package lower

import (
	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/errors"
	"github.com/bel-learning/mila-compiler/internal/ir"
	"github.com/bel-learning/mila-compiler/internal/runtime"
	"github.com/bel-learning/mila-compiler/internal/token"
)

// binOps maps a binary operator tag to the IR opcode emitted for it.
// token.SLASH has no entry: the parser never produces it as an infix
// operator (spec.md's Non-goals exclude floating point), so lowering never
// needs to lower it.
var binOps = map[token.Type]string{
	token.PLUS:    "add",
	token.MINUS:   "sub",
	token.STAR:    "mul",
	token.MOD:     "srem",
	token.DIV:     "sdiv",
	token.EQL:     "eq",
	token.NEQ:     "ne",
	token.NOT_EQ:  "ne",
	token.LSS:     "lt",
	token.LESS_EQ: "le",
	token.GTR:     "gt",
	token.GTR_EQ:  "ge",
	token.AND:     "and",
	token.OR:      "or",
	token.OR_OR:   "or",
	token.XOR:     "xor",
}

func isComparison(op string) bool {
	switch op {
	case "eq", "ne", "lt", "le", "gt", "ge":
		return true
	default:
		return false
	}
}

// lowerExpr lowers an expression to the IR value it computes. Void-result
// calls (procedures, `writeln`, `dec`) return a Value whose Type() is
// ir.Void; callers that need the result discard it (as the grammar's
// `statement := expression` production does).
func (l *Lowerer) lowerExpr(expr ast.Expression) (ir.Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return &ir.Const{Val: e.Value}, nil

	case *ast.NameRef:
		entry := l.syms.Lookup(e.Name)
		if entry == nil {
			return nil, l.errorf(errors.UnknownName, e.Pos(), "reference to unbound name %q", e.Name)
		}
		slot, ok := entry.Slot.(*ir.Alloca)
		if !ok {
			return nil, l.errorf(errors.UnknownName, e.Pos(), "name %q does not name a storage slot", e.Name)
		}
		return l.builder.CreateLoad(slot), nil

	case *ast.UnaryExpr:
		return l.lowerUnary(e)

	case *ast.BinaryExpr:
		if e.Operator == token.ASSIGN {
			return l.lowerAssign(e)
		}
		return l.lowerBinary(e)

	case *ast.CallExpr:
		return l.lowerCall(e)

	default:
		return nil, l.errorf(errors.SyntaxError, expr.Pos(), "cannot lower expression of type %T", expr)
	}
}

// lowerUnary lowers the prefix `not` operator as logical negation: the
// operand is compared against zero and the predicate is inverted, matching
// how lowerBinary already extends comparisons to a 32-bit 0/1 result.
func (l *Lowerer) lowerUnary(e *ast.UnaryExpr) (ir.Value, error) {
	operand, err := l.lowerExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	return l.builder.CreateICmp("eq", operand, &ir.Const{Val: 0}), nil
}

func (l *Lowerer) lowerBinary(e *ast.BinaryExpr) (ir.Value, error) {
	lhs, err := l.lowerExpr(e.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := l.lowerExpr(e.Right)
	if err != nil {
		return nil, err
	}
	op, ok := binOps[e.Operator]
	if !ok {
		return nil, l.errorf(errors.SyntaxError, e.OpPos, "unsupported binary operator %s", e.Operator)
	}
	if isComparison(op) {
		return l.builder.CreateICmp(op, lhs, rhs), nil
	}
	return l.builder.CreateBinOp(op, lhs, rhs), nil
}

// lowerAssign lowers `lhs := rhs`: evaluate the right-hand side, resolve
// the left-hand side to a slot, reject assignment to a constant, store, and
// return the stored value (spec.md §9's open question on assignment as a
// value-producing expression, decided in favor of the source's behavior).
func (l *Lowerer) lowerAssign(e *ast.BinaryExpr) (ir.Value, error) {
	name, ok := e.Left.(*ast.NameRef)
	if !ok {
		// The parser already rejects non-NameRef assignment targets with
		// NotAnLValue; a BinaryExpr with Operator==ASSIGN built any other
		// way is a lowering-internal bug, not a user-facing failure mode.
		return nil, l.errorf(errors.SyntaxError, e.Left.Pos(), "assignment target is not a name")
	}
	rhs, err := l.lowerExpr(e.Right)
	if err != nil {
		return nil, err
	}
	entry := l.syms.Lookup(name.Name)
	if entry == nil {
		return nil, l.errorf(errors.UnknownName, name.Pos(), "reference to unbound name %q", name.Name)
	}
	if entry.Constant {
		return nil, l.errorf(errors.AssignToConst, name.Pos(), "cannot assign to constant %q", name.Name)
	}
	slot, ok := entry.Slot.(*ir.Alloca)
	if !ok {
		return nil, l.errorf(errors.UnknownName, name.Pos(), "name %q does not name a storage slot", name.Name)
	}
	l.builder.CreateStore(rhs, slot)
	return rhs, nil
}

// lowerCall lowers a call expression, special-casing the `readln` and `dec`
// runtime entries per spec.md §4.4.
func (l *Lowerer) lowerCall(e *ast.CallExpr) (ir.Value, error) {
	sig, ok := l.protos[e.Callee]
	if !ok {
		return nil, l.errorf(errors.UnknownName, e.Pos(), "call to undeclared function %q", e.Callee)
	}
	if len(e.Args) != sig.Arity {
		return nil, l.errorf(errors.ArityMismatch, e.Pos(),
			"%q expects %d argument(s), got %d", e.Callee, sig.Arity, len(e.Args))
	}

	// readln/dec are only special-cased when they resolve to the runtime's
	// own builtins, not a user function that happens to reuse the name.
	if _, isBuiltin := runtime.Lookup(e.Callee); isBuiltin {
		switch e.Callee {
		case "readln":
			return l.lowerReadln(e)
		case "dec":
			return l.lowerDec(e)
		}
	}

	args := make([]ir.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := l.lowerExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return l.builder.CreateCall(e.Callee, args, sig.Result), nil
}

// lowerReadln passes the argument's storage slot itself, not its loaded
// value, matching the `(int32*) → int32` signature in spec.md §6.
func (l *Lowerer) lowerReadln(e *ast.CallExpr) (ir.Value, error) {
	name, ok := e.Args[0].(*ast.NameRef)
	if !ok {
		return nil, l.errorf(errors.NotAnLValue, e.Args[0].Pos(), "readln argument must be a name reference")
	}
	entry := l.syms.Lookup(name.Name)
	if entry == nil {
		return nil, l.errorf(errors.UnknownName, name.Pos(), "reference to unbound name %q", name.Name)
	}
	if entry.Constant {
		return nil, l.errorf(errors.AssignToConst, name.Pos(), "cannot assign to constant %q", name.Name)
	}
	return l.builder.CreateCall("readln", []ir.Value{entry.Slot}, ir.I32), nil
}

// lowerDec inlines the `dec` intrinsic: load, subtract 1, store — no Call
// instruction is emitted, per spec.md §4.4 ("dec(x) is intrinsic").
func (l *Lowerer) lowerDec(e *ast.CallExpr) (ir.Value, error) {
	name, ok := e.Args[0].(*ast.NameRef)
	if !ok {
		return nil, l.errorf(errors.NotAnLValue, e.Args[0].Pos(), "dec argument must be a name reference")
	}
	entry := l.syms.Lookup(name.Name)
	if entry == nil {
		return nil, l.errorf(errors.UnknownName, name.Pos(), "reference to unbound name %q", name.Name)
	}
	if entry.Constant {
		return nil, l.errorf(errors.AssignToConst, name.Pos(), "cannot assign to constant %q", name.Name)
	}
	slot, ok := entry.Slot.(*ir.Alloca)
	if !ok {
		return nil, l.errorf(errors.UnknownName, name.Pos(), "name %q does not name a storage slot", name.Name)
	}
	loaded := l.builder.CreateLoad(slot)
	decremented := l.builder.CreateBinOp("sub", loaded, &ir.Const{Val: 1})
	l.builder.CreateStore(decremented, slot)
	return &ir.Call{ResultType: ir.Void}, nil
}
