package ir

import (
	"fmt"
	"io"
	"strings"
)

// String renders m in a readable SSA-like text form. This is the in-repo
// stand-in for spec.md §6's "the IR builder library supplies a textual
// printer" — its exact syntax is not mandated by spec.md, only its
// existence.
func (m *Module) String() string {
	var sb strings.Builder
	Fprint(&sb, m)
	return sb.String()
}

// Fprint writes m's textual form to w.
func Fprint(w io.Writer, m *Module) {
	fmt.Fprintf(w, "; module %s\n", m.Name)
	for _, fn := range m.Functions {
		fprintFunction(w, fn)
	}
}

func fprintFunction(w io.Writer, fn *Function) {
	params := make([]string, len(fn.ParamNames))
	for i, p := range fn.ParamNames {
		params[i] = fmt.Sprintf("%s: i32", p)
	}
	fmt.Fprintf(w, "\nfunc @%s(%s) -> %s", fn.Name, strings.Join(params, ", "), fn.ReturnType)
	if len(fn.Blocks) == 0 {
		fmt.Fprintf(w, " ; forward\n")
		return
	}
	fmt.Fprintf(w, " {\n")
	for _, bb := range fn.Blocks {
		fmt.Fprintf(w, "%s:\n", bb.Name)
		for _, instr := range bb.Instrs {
			fmt.Fprintf(w, "  %s\n", formatInstr(instr))
		}
		if bb.Term != nil {
			fmt.Fprintf(w, "  %s\n", formatTerm(bb.Term))
		}
	}
	fmt.Fprintf(w, "}\n")
}

func formatInstr(i Instruction) string {
	switch v := i.(type) {
	case *Alloca:
		return fmt.Sprintf("%s = alloca i32 ; %s", v.ValueName(), v.Name)
	case *Load:
		return fmt.Sprintf("%s = load %s", v.ValueName(), v.Src.ValueName())
	case *Store:
		return fmt.Sprintf("store %s, %s", v.Src.ValueName(), v.Dst.ValueName())
	case *BinOp:
		return fmt.Sprintf("%s = %s %s, %s", v.ValueName(), v.Op, v.LHS.ValueName(), v.RHS.ValueName())
	case *Call:
		args := make([]string, len(v.Args))
		for j, a := range v.Args {
			args[j] = a.ValueName()
		}
		if v.ResultType == Void {
			return fmt.Sprintf("call void @%s(%s)", v.Callee, strings.Join(args, ", "))
		}
		return fmt.Sprintf("%s = call %s @%s(%s)", v.ValueName(), v.ResultType, v.Callee, strings.Join(args, ", "))
	default:
		return "<?instr>"
	}
}

func formatTerm(t Terminator) string {
	switch v := t.(type) {
	case *Br:
		return fmt.Sprintf("br label %s", v.Target.Name)
	case *CondBr:
		return fmt.Sprintf("condbr %s, label %s, label %s", v.Cond.ValueName(), v.True.Name, v.False.Name)
	case *Ret:
		return fmt.Sprintf("ret %s", v.Val.ValueName())
	case *RetVoid:
		return "ret void"
	default:
		return "<?term>"
	}
}
