package instructions

import (
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/replacements"
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// MergeDefaultReplacements reads the optional default replacement map block,
// adds its assignments to repl where the key is not set yet and returns
// lines without the block. Lines in the block that are not assignments are
// skipped.
func MergeDefaultReplacements(lines []string, repl *replacements.Map) ([]string, error) {
	begin := textscan.FindLinePrefix(lines, DefaultMapBegin)
	if begin == -1 {
		return lines, nil
	}
	end := textscan.FindLinePrefix(lines, DefaultMapEnd)
	if end == -1 {
		return nil, errors.Newf(errors.ErrSyntax, "'%s' not found", DefaultMapEnd)
	}
	if end < begin {
		return nil, errors.Newf(errors.ErrSyntax, "'%s' must go after '%s'", DefaultMapEnd, DefaultMapBegin)
	}

	for _, line := range lines[begin+1 : end] {
		a, err := textscan.ParseAssignment(line)
		if err != nil {
			continue
		}
		repl.SetIfAbsent(a.Name, a.Value)
	}
	return textscan.RemoveRange(lines, begin, end), nil
}

// InstructionSpan returns the lines strictly between the instruction
// markers. Both markers are required, begin first. An empty block yields no
// lines.
func InstructionSpan(lines []string) ([]string, error) {
	begin := textscan.FindLinePrefix(lines, InstructionsBegin)
	end := textscan.FindLinePrefix(lines, InstructionsEnd)
	switch {
	case begin == -1:
		return nil, errors.Newf(errors.ErrSyntax, "'%s' directive is missing", InstructionsBegin)
	case end == -1:
		return nil, errors.Newf(errors.ErrSyntax, "'%s' directive is missing", InstructionsEnd)
	case begin > end:
		return nil, errors.Newf(errors.ErrSyntax, "'%s' must go after '%s'", InstructionsEnd, InstructionsBegin)
	}
	return append([]string{}, lines[begin+1:end]...), nil
}
