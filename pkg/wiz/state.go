package wiz

import "github.com/arthur-debert/lollywiz/pkg/errors"

// State is where the engine is in its lifecycle
type State int

const (
	Unparsed State = iota
	Parsed
	Executing
	Done
	Halted
)

func (s State) String() string {
	switch s {
	case Unparsed:
		return "unparsed"
	case Parsed:
		return "parsed"
	case Executing:
		return "executing"
	case Done:
		return "done"
	default:
		return "halted"
	}
}

// ErrorKind is the content of the error register
type ErrorKind int

const (
	NoError ErrorKind = iota
	SyntaxError
	FileError
	ProceduralError
	VersionError
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "none"
	case SyntaxError:
		return "syntax"
	case FileError:
		return "file"
	case VersionError:
		return "version"
	default:
		return "procedural"
	}
}

// KindOf maps an error to its register kind. Errors without one of the
// engine's codes count as procedural.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrSyntax:
		return SyntaxError
	case errors.ErrFile:
		return FileError
	case errors.ErrVersion:
		return VersionError
	default:
		return ProceduralError
	}
}
