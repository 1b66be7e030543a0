package textscan

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/lollywiz/pkg/errors"
)

// Command is a line split into its first word and the arguments after it
type Command struct {
	Name string
	Args []string
}

// SplitCommand splits a shell-like line into a command and its arguments.
// Arguments are separated by whitespace; an argument that starts with a
// single or double quote runs to the next matching quote and is taken
// verbatim, without escapes. An unterminated quote is a syntax error.
//
//	mycmd 'first arg' "long/second" third  ->  mycmd [first arg, long/second, third]
func SplitCommand(line string) (Command, error) {
	rest := strings.TrimSpace(line)
	name, rest := firstWord(rest)
	cmd := Command{Name: name, Args: []string{}}

	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return cmd, nil
		}

		var arg string
		switch rest[0] {
		case '\'', '"':
			quote := rest[0]
			closing := strings.IndexByte(rest[1:], quote)
			if closing == -1 {
				return Command{}, errors.Newf(errors.ErrSyntax,
					"unterminated %c quote in %q", quote, line).
					WithDetail("line", line)
			}
			arg = rest[1 : closing+1]
			rest = rest[closing+2:]
		default:
			arg, rest = firstWord(rest)
		}
		cmd.Args = append(cmd.Args, arg)
	}
}

// firstWord returns the leading whitespace-delimited word of s and the text
// after the delimiter
func firstWord(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}
