package instructions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/directive"
	"github.com/arthur-debert/lollywiz/pkg/errors"
)

// Instruction is one validated line of the instruction block. Args are
// relative to the source and destination roots.
type Instruction struct {
	Kind directive.Kind
	Args []string
}

// Src is the first argument
func (i Instruction) Src() string {
	return i.Args[0]
}

// Dest is the destination argument: the second one for copy and inst, the
// only one for mkdir and remove
func (i Instruction) Dest() string {
	return i.Args[len(i.Args)-1]
}

func (i Instruction) String() string {
	parts := []string{i.Kind.String()}
	for _, a := range i.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Parse validates every line and returns the instructions in order. The
// first bad line fails the whole batch.
func Parse(lines []string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))
	for n, line := range lines {
		d, err := directive.Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSyntax, "malformed instruction '%s'", line).
				WithDetail("index", n)
		}
		if !d.Kind.IsInstruction() {
			return nil, errors.Newf(errors.ErrSyntax, "unknown instruction '%s'", d.Name).
				WithDetail("line", line)
		}
		if len(d.Args) != d.Kind.Arity() {
			return nil, errors.New(errors.ErrSyntax, arityMessage(d)).
				WithDetail("line", line)
		}
		out = append(out, Instruction{Kind: d.Kind, Args: d.Args})
	}
	return out, nil
}

func arityMessage(d directive.Directive) string {
	want := d.Kind.Arity()
	noun := "arguments"
	if want == 1 {
		noun = "argument"
	}
	return fmt.Sprintf("'%s' takes %d %s, got %d", d.Name, want, noun, len(d.Args))
}
