package textscan

import (
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/errors"
)

// Assignment is a parsed "name = value" line
type Assignment struct {
	Name  string
	Value string
}

// ParseAssignment splits line at its first '='. Both sides are trimmed and a
// value wrapped in matching single or double quotes is unquoted, keeping the
// whitespace inside the quotes. A missing '=' or an opening quote without a
// matching closing quote is a syntax error. An empty value is valid.
func ParseAssignment(line string) (Assignment, error) {
	eq := strings.IndexByte(line, '=')
	if eq == -1 {
		return Assignment{}, errors.Newf(errors.ErrSyntax, "no '=' in %q", line).
			WithDetail("line", line)
	}

	a := Assignment{Name: strings.TrimSpace(line[:eq])}
	value, err := StripQuotes(line[eq+1:])
	if err != nil {
		return Assignment{}, err
	}
	a.Value = value
	return a, nil
}

// StripQuotes trims s and removes one pair of surrounding quotes. Unquoted
// input is returned trimmed.
func StripQuotes(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '\'' && s[0] != '"') {
		return s, nil
	}
	quote := s[0]
	if len(s) < 2 || s[len(s)-1] != quote {
		return "", errors.Newf(errors.ErrSyntax, "unterminated %c quote in %q", quote, s)
	}
	return s[1 : len(s)-1], nil
}
