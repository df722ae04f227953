package ir

import "fmt"

// VerifyError reports a structurally malformed function — a missing
// terminator, a branch to a block outside the function, or a block
// unreachable from entry — caught by the verifier spec.md §4.4 requires to
// run "on every completed function".
type VerifyError struct {
	Function string
	Message  string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("function %s: %s", e.Function, e.Message)
}

// Verify checks fn's block/terminator discipline: every block must have
// exactly one terminator, every terminator's target blocks must belong to
// fn, and every block must be reachable from the entry block.
func Verify(fn *Function) error {
	belongs := make(map[*BasicBlock]bool, len(fn.Blocks))
	for _, bb := range fn.Blocks {
		belongs[bb] = true
	}

	for _, bb := range fn.Blocks {
		if bb.Term == nil {
			return &VerifyError{Function: fn.Name, Message: fmt.Sprintf("block %q has no terminator", bb.Name)}
		}
		for _, target := range targetsOf(bb.Term) {
			if !belongs[target] {
				return &VerifyError{Function: fn.Name, Message: fmt.Sprintf("block %q branches to a block outside the function", bb.Name)}
			}
		}
	}

	if unreachable := firstUnreachable(fn); unreachable != nil {
		return &VerifyError{Function: fn.Name, Message: fmt.Sprintf("block %q is unreachable from entry", unreachable.Name)}
	}
	return nil
}

// firstUnreachable walks the CFG from fn's entry block and returns the
// first block (in fn.Blocks order) that the walk never reaches, or nil if
// every block is reachable. Lowering never intentionally leaves a block
// stranded, so an unreachable block indicates a lowering bug.
func firstUnreachable(fn *Function) *BasicBlock {
	if len(fn.Blocks) == 0 {
		return nil
	}

	reached := make(map[*BasicBlock]bool, len(fn.Blocks))
	queue := []*BasicBlock{fn.Blocks[0]}
	reached[fn.Blocks[0]] = true
	for len(queue) > 0 {
		bb := queue[0]
		queue = queue[1:]
		for _, target := range targetsOf(bb.Term) {
			if !reached[target] {
				reached[target] = true
				queue = append(queue, target)
			}
		}
	}

	for _, bb := range fn.Blocks {
		if !reached[bb] {
			return bb
		}
	}
	return nil
}

func targetsOf(t Terminator) []*BasicBlock {
	switch term := t.(type) {
	case *Br:
		return []*BasicBlock{term.Target}
	case *CondBr:
		return []*BasicBlock{term.True, term.False}
	default:
		return nil
	}
}
