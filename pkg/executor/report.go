package executor

import (
	"fmt"
	"time"

	"github.com/arthur-debert/lollywiz/pkg/instructions"
)

// Outcome is what happened to one instruction
type Outcome int

const (
	// Applied means the instruction changed the destination
	Applied Outcome = iota
	// Unchanged means there was nothing to do, like mkdir on an existing
	// directory
	Unchanged
	// Planned is the outcome of every instruction in a dry run
	Planned
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case Planned:
		return "planned"
	default:
		return "failed"
	}
}

// Step records one executed instruction. Src and Dest are the paths after
// joining with the roots; Src is empty for mkdir and remove.
type Step struct {
	Instruction instructions.Instruction
	Src         string
	Dest        string
	Outcome     Outcome
	Message     string
	Error       error
	Duration    time.Duration
}

func (s Step) String() string {
	if s.Src != "" {
		return fmt.Sprintf("%s %s -> %s", s.Instruction.Kind, s.Src, s.Dest)
	}
	return fmt.Sprintf("%s %s", s.Instruction.Kind, s.Dest)
}

// Report is the result of a run, one step per attempted instruction
type Report struct {
	Steps  []Step
	DryRun bool
}

// Count returns how many steps ended with outcome o
func (r Report) Count(o Outcome) int {
	n := 0
	for _, s := range r.Steps {
		if s.Outcome == o {
			n++
		}
	}
	return n
}

// Failure returns the step that stopped the run, if any
func (r Report) Failure() (Step, bool) {
	if len(r.Steps) == 0 {
		return Step{}, false
	}
	last := r.Steps[len(r.Steps)-1]
	return last, last.Outcome == Failed
}
