// Package directive defines the bracket-delimited control tokens used in
// templates and instruction files, and a scanner that finds them.
package directive

import (
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// Markers for conditional directives in template bodies and instruction files
const (
	OpenMarker  = "[##"
	CloseMarker = "##]"
)

// MaxIterations bounds every scanning loop. Malformed input that would keep a
// loop from advancing is reported as a procedural error instead of hanging.
const MaxIterations = 1000

// Kind is the tagged variant of a directive
type Kind int

const (
	Unknown Kind = iota
	If
	Elif
	Else
	Endif
	Copy
	Remove
	Inst
	Mkdir
)

var kindNames = map[Kind]string{
	If:     "if",
	Elif:   "elif",
	Else:   "else",
	Endif:  "endif",
	Copy:   "copy",
	Remove: "remove",
	Inst:   "inst",
	Mkdir:  "mkdir",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the keyword for the kind
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindOf maps a keyword to its kind, Unknown if it is not a keyword
func KindOf(name string) Kind {
	return kindsByName[name]
}

// IsConditional reports whether the kind belongs to an if/elif/else/endif group
func (k Kind) IsConditional() bool {
	return k >= If && k <= Endif
}

// IsInstruction reports whether the kind is a file-tree instruction
func (k Kind) IsInstruction() bool {
	return k >= Copy && k <= Mkdir
}

// Arity is the number of arguments the kind requires
func (k Kind) Arity() int {
	switch k {
	case If, Elif, Remove, Mkdir:
		return 1
	case Copy, Inst:
		return 2
	default:
		return 0
	}
}

// Directive is a parsed directive. Name keeps the original keyword so that
// unknown commands can still be reported.
type Directive struct {
	Kind Kind
	Name string
	Args []string
}

// Parse lexes directive content (the text between the markers, or a whole
// instruction line) into a Directive
func Parse(content string) (Directive, error) {
	cmd, err := textscan.SplitCommand(content)
	if err != nil {
		return Directive{}, err
	}
	return Directive{Kind: KindOf(cmd.Name), Name: cmd.Name, Args: cmd.Args}, nil
}

// Arg returns the i-th argument or "" when absent
func (d Directive) Arg(i int) string {
	if i < 0 || i >= len(d.Args) {
		return ""
	}
	return d.Args[i]
}
