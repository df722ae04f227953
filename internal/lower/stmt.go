package lower

import (
	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/errors"
	"github.com/bel-learning/mila-compiler/internal/ir"
)

func (l *Lowerer) lowerBlock(b *ast.Block) error {
	for _, stmt := range b.Statements {
		if err := l.lowerStatement(stmt); err != nil {
			return err
		}
		if l.builder.Terminated() {
			// Statements after exit/break in the same block are
			// unreachable; stop lowering rather than emit instructions
			// into an already-terminated block.
			break
		}
	}
	return nil
}

func (l *Lowerer) lowerStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := l.lowerExpr(s.Expr)
		return err
	case *ast.VarDecl:
		return l.lowerVarDecl(s)
	case *ast.IfStmt:
		return l.lowerIf(s)
	case *ast.WhileStmt:
		return l.lowerWhile(s)
	case *ast.ForStmt:
		return l.lowerFor(s)
	case *ast.ExitStmt:
		return l.lowerExit(s)
	case *ast.BreakStmt:
		return l.lowerBreak(s)
	case *ast.Block:
		return l.lowerBlock(s)
	default:
		return l.errorf(errors.SyntaxError, stmt.Pos(), "cannot lower statement of type %T", stmt)
	}
}

// lowerVarDecl allocates a stack slot in the function's entry block
// (CreateAlloca always does, regardless of the current insertion point),
// stores the initializer if present, and registers the name.
func (l *Lowerer) lowerVarDecl(d *ast.VarDecl) error {
	if l.syms.Declared(d.Name) {
		return l.errorf(errors.Redeclaration, d.Pos(), "%q redeclared in this scope", d.Name)
	}
	slot := l.builder.CreateAlloca(d.Name)
	if d.Init != nil {
		val, err := l.lowerExpr(d.Init)
		if err != nil {
			return err
		}
		l.builder.CreateStore(val, slot)
	}
	l.syms.Insert(d.Name, slot, d.Const)
	return nil
}

// lowerIf creates `then`, optionally `else`, and always a `merge` block —
// even when every branch already terminates (spec.md §4.4's "even if a
// branch contains a terminator, the merge block is still created").
func (l *Lowerer) lowerIf(s *ast.IfStmt) error {
	cond, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	cond = l.asBool(cond)

	thenBB := l.fn.NewBlock("if.then")
	mergeBB := l.fn.NewBlock("if.merge")
	elseBB := mergeBB
	if s.Else != nil {
		elseBB = l.fn.NewBlock("if.else")
	}
	l.builder.CreateCondBr(cond, thenBB, elseBB)

	l.builder.SetInsertPoint(thenBB)
	if err := l.lowerStatement(s.Then); err != nil {
		return err
	}
	if !l.builder.Terminated() {
		l.builder.CreateBr(mergeBB)
	}

	if s.Else != nil {
		l.builder.SetInsertPoint(elseBB)
		if err := l.lowerStatement(s.Else); err != nil {
			return err
		}
		if !l.builder.Terminated() {
			l.builder.CreateBr(mergeBB)
		}
	}

	l.builder.SetInsertPoint(mergeBB)
	return nil
}

// lowerWhile creates `cond`, `body`, `exit`, pushing `exit` onto the
// loop-exit stack for the duration of the body (spec.md §4.4).
func (l *Lowerer) lowerWhile(s *ast.WhileStmt) error {
	condBB := l.fn.NewBlock("while.cond")
	bodyBB := l.fn.NewBlock("while.body")
	exitBB := l.fn.NewBlock("while.exit")

	l.builder.CreateBr(condBB)

	l.builder.SetInsertPoint(condBB)
	cond, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	l.builder.CreateCondBr(l.asBool(cond), bodyBB, exitBB)

	l.builder.SetInsertPoint(bodyBB)
	l.loopExits = append(l.loopExits, exitBB)
	err = l.lowerStatement(s.Body)
	l.loopExits = l.loopExits[:len(l.loopExits)-1]
	if err != nil {
		return err
	}
	if !l.builder.Terminated() {
		l.builder.CreateBr(condBB)
	}

	l.builder.SetInsertPoint(exitBB)
	return nil
}

// lowerFor mirrors lowerWhile: evaluate Start once into the induction
// variable's existing slot, then each iteration re-evaluate End, compare,
// run the body, and step by ±1 (spec.md §4.4 For semantics).
func (l *Lowerer) lowerFor(s *ast.ForStmt) error {
	entry := l.syms.Lookup(s.Var)
	if entry == nil {
		return l.errorf(errors.UnknownName, s.Pos(),
			"for-loop variable %q must be declared in an enclosing var block", s.Var)
	}
	if entry.Constant {
		return l.errorf(errors.AssignToConst, s.Pos(), "cannot assign to constant %q", s.Var)
	}
	slot, ok := entry.Slot.(*ir.Alloca)
	if !ok {
		return l.errorf(errors.UnknownName, s.Pos(), "name %q does not name a storage slot", s.Var)
	}

	start, err := l.lowerExpr(s.Start)
	if err != nil {
		return err
	}
	l.builder.CreateStore(start, slot)

	condBB := l.fn.NewBlock("for.cond")
	bodyBB := l.fn.NewBlock("for.body")
	exitBB := l.fn.NewBlock("for.exit")

	l.builder.CreateBr(condBB)

	l.builder.SetInsertPoint(condBB)
	cur := l.builder.CreateLoad(slot)
	end, err := l.lowerExpr(s.End)
	if err != nil {
		return err
	}
	cmpOp := "le"
	if s.Downto {
		cmpOp = "ge"
	}
	cond := l.builder.CreateICmp(cmpOp, cur, end)
	l.builder.CreateCondBr(cond, bodyBB, exitBB)

	l.builder.SetInsertPoint(bodyBB)
	l.loopExits = append(l.loopExits, exitBB)
	err = l.lowerStatement(s.Body)
	l.loopExits = l.loopExits[:len(l.loopExits)-1]
	if err != nil {
		return err
	}
	if !l.builder.Terminated() {
		step := int32(1)
		if s.Downto {
			step = -1
		}
		stepped := l.builder.CreateBinOp("add", l.builder.CreateLoad(slot), &ir.Const{Val: step})
		l.builder.CreateStore(stepped, slot)
		l.builder.CreateBr(condBB)
	}

	l.builder.SetInsertPoint(exitBB)
	return nil
}

// lowerExit loads the function's return slot and emits a return; void
// functions and the synthesized main function emit their fixed returns
// instead (main always returns the constant 0, per spec.md §3).
func (l *Lowerer) lowerExit(s *ast.ExitStmt) error {
	if l.isMain {
		l.builder.CreateRet(&ir.Const{Val: 0})
		return nil
	}
	if l.fn.ReturnType == ir.Void {
		l.builder.CreateRetVoid()
		return nil
	}
	val := l.builder.CreateLoad(l.returnSlot)
	l.builder.CreateRet(val)
	return nil
}

// lowerBreak branches to the innermost enclosing loop's exit block; an
// empty loop-exit stack is NoEnclosingLoop (spec.md §4.4). The parser
// cannot produce a BreakStmt today (see internal/ast's doc comment on
// BreakStmt) — this path is exercised only by lowering tests that
// construct the node directly.
func (l *Lowerer) lowerBreak(s *ast.BreakStmt) error {
	if len(l.loopExits) == 0 {
		return l.errorf(errors.NoEnclosingLoop, s.Pos(), "break outside any loop")
	}
	target := l.loopExits[len(l.loopExits)-1]
	l.builder.CreateBr(target)
	return nil
}

// asBool normalizes a condition value for CreateCondBr. Comparisons and
// `not` already produce a 0/1 32-bit result; any other value (a bare
// integer, a loaded variable) is compared against zero so `if x then`
// means "if x is non-zero".
func (l *Lowerer) asBool(v ir.Value) ir.Value {
	if b, ok := v.(*ir.BinOp); ok && isComparison(b.Op) {
		return v
	}
	return l.builder.CreateICmp("ne", v, &ir.Const{Val: 0})
}
