// Package lower implements the AST-to-IR walk (spec.md §4.4): one post-order
// pass that materializes function prototypes, entry blocks, stack slots,
// and the control-flow blocks for conditionals and loops, while threading a
// symbol table and a loop-exit stack through the walk.
package lower

import (
	"fmt"

	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/errors"
	"github.com/bel-learning/mila-compiler/internal/ir"
	"github.com/bel-learning/mila-compiler/internal/runtime"
	"github.com/bel-learning/mila-compiler/internal/symtab"
	"github.com/bel-learning/mila-compiler/internal/token"
)

// signature is what a callee resolves to: arity and result type, whether it
// names a user function, a runtime builtin, or the `dec` intrinsic.
type signature struct {
	Arity     int
	Result    ir.Type
	Intrinsic bool
}

// Lowerer walks one ast.Program to completion and produces one ir.Module.
// It is not reusable across programs — construct a fresh one per call to
// Lower, mirroring the teacher's single-use compiler-pass instances.
type Lowerer struct {
	source string
	file   string

	module  *ir.Module
	builder *ir.Builder
	syms    *symtab.Table

	protos map[string]signature

	fn         *ir.Function
	returnSlot *ir.Alloca // nil for main
	isMain     bool

	loopExits []*ir.BasicBlock
}

// New returns a Lowerer ready to lower one program. source and file feed
// diagnostic rendering exactly as they do in internal/parser.
func New(source, file string) *Lowerer {
	return &Lowerer{
		source:  source,
		file:    file,
		builder: ir.NewBuilder(),
		syms:    symtab.New(),
		protos:  make(map[string]signature),
	}
}

// Lower translates prog into a complete IR module, or returns the first
// error encountered (spec.md §4.4 Failure semantics: lowering errors are
// fatal, no recovery).
func (l *Lowerer) Lower(prog *ast.Program) (*ir.Module, error) {
	l.module = ir.NewModule(prog.Name)

	for _, b := range runtime.Builtins() {
		l.protos[b.Name] = signature{Arity: b.Arity, Result: b.Result, Intrinsic: b.Intrinsic}
	}
	for _, fd := range prog.Functions {
		l.protos[fd.Proto.Name] = signature{Arity: len(fd.Proto.Params), Result: protoResult(fd.Proto)}
	}

	for _, fd := range prog.Functions {
		if fd.Body == nil {
			continue // forward declaration only; prototype already registered
		}
		if err := l.lowerFunction(fd); err != nil {
			return nil, err
		}
	}
	if err := l.lowerMain(prog); err != nil {
		return nil, err
	}
	return l.module, nil
}

func protoResult(proto *ast.Prototype) ir.Type {
	if proto.HasReturn || proto.Name == "main" {
		return ir.I32
	}
	return ir.Void
}

func (l *Lowerer) errorf(kind errors.Kind, pos token.Position, format string, args ...any) error {
	return errors.New(kind, pos, fmt.Sprintf(format, args...), l.source, l.file)
}

// lowerFunction lowers one non-main function or procedure: entry block,
// return slot, parameters, locals, body, then the implicit terminator.
func (l *Lowerer) lowerFunction(fd *ast.FunctionDecl) error {
	sig := l.protos[fd.Proto.Name]
	fn := l.module.NewFunction(fd.Proto.Name, fd.Proto.Params, sig.Result)

	l.fn = fn
	l.isMain = false
	l.syms.Clear()
	l.loopExits = nil

	entry := fn.NewBlock("entry")
	l.builder.SetFunction(fn)
	l.builder.SetInsertPoint(entry)

	// The return value is modeled as a stack slot named for the function
	// itself (spec.md §3 invariant); writes to that name update the result.
	l.returnSlot = l.builder.CreateAlloca(fd.Proto.Name)
	l.syms.Insert(fd.Proto.Name, l.returnSlot, false)

	for i, pname := range fd.Proto.Params {
		if l.syms.Declared(pname) {
			return l.errorf(errors.Redeclaration, fd.Proto.Pos(), "parameter %q redeclared", pname)
		}
		slot := l.builder.CreateAlloca(pname)
		l.builder.CreateStore(fn.Args[i], slot)
		l.syms.Insert(pname, slot, false)
	}

	if err := l.lowerLocals(fd.Locals); err != nil {
		return err
	}
	if err := l.lowerBlock(fd.Body); err != nil {
		return err
	}

	if !l.builder.Terminated() {
		if fn.ReturnType == ir.Void {
			l.builder.CreateRetVoid()
		} else {
			val := l.builder.CreateLoad(l.returnSlot)
			l.builder.CreateRet(val)
		}
	}

	if err := ir.Verify(fn); err != nil {
		return l.errorf(errors.VerifyError, fd.Pos(), "%s", err.Error())
	}
	return nil
}

// lowerMain lowers the program's trailing `begin…end` block as a function
// named "main" that always returns a 32-bit integer (spec.md §3 invariant),
// regardless of the main block having no declared return type.
func (l *Lowerer) lowerMain(prog *ast.Program) error {
	fn := l.module.NewFunction("main", nil, ir.I32)

	l.fn = fn
	l.isMain = true
	l.returnSlot = nil
	l.syms.Clear()
	l.loopExits = nil

	entry := fn.NewBlock("entry")
	l.builder.SetFunction(fn)
	l.builder.SetInsertPoint(entry)

	if err := l.lowerLocals(prog.MainLocals); err != nil {
		return err
	}
	if err := l.lowerBlock(prog.Main); err != nil {
		return err
	}

	if !l.builder.Terminated() {
		l.builder.CreateRet(&ir.Const{Val: 0})
	}

	if err := ir.Verify(fn); err != nil {
		return l.errorf(errors.VerifyError, prog.Pos(), "%s", err.Error())
	}
	return nil
}

// lowerLocals allocates and (for initialized decls) stores each local
// var/const declaration, registering it in the symbol table.
func (l *Lowerer) lowerLocals(decls []*ast.VarDecl) error {
	for _, d := range decls {
		if err := l.lowerVarDecl(d); err != nil {
			return err
		}
	}
	return nil
}
