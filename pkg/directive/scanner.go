package directive

import (
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// Match is a directive found in a text together with its offsets. End is
// past the close marker and, when newline absorption is on, past the line
// break that follows it.
type Match struct {
	Directive
	Start int
	End   int
}

// Scanner locates directives in a text. Source names the text in error
// messages.
type Scanner struct {
	Source         string
	AbsorbNewlines bool
}

// NewScanner returns a scanner with newline absorption enabled
func NewScanner(source string) *Scanner {
	return &Scanner{Source: source, AbsorbNewlines: true}
}

// Find returns the first directive named name within [from, to). A negative
// to means the end of text. ok is false when no such directive exists; that
// is not an error.
func (s *Scanner) Find(text, name string, from, to int) (Match, bool, error) {
	return s.FindFunc(text, from, to, func(d Directive) bool { return d.Name == name })
}

// FindConditional returns the first if/elif/else/endif within [from, to)
func (s *Scanner) FindConditional(text string, from, to int) (Match, bool, error) {
	return s.FindFunc(text, from, to, func(d Directive) bool { return d.Kind.IsConditional() })
}

// NoConditionals reports whether [from, to) holds no if/elif/else/endif
func (s *Scanner) NoConditionals(text string, from, to int) (bool, error) {
	_, found, err := s.FindConditional(text, from, to)
	if err != nil {
		return false, err
	}
	return !found, nil
}

// FindFunc returns the first directive within [from, to) accepted by want
func (s *Scanner) FindFunc(text string, from, to int, want func(Directive) bool) (Match, bool, error) {
	if to < 0 || to > len(text) {
		to = len(text)
	}
	cur := from
	for i := 0; ; i++ {
		if i >= MaxIterations {
			logger := logging.GetLogger("directive")
			logger.Error().
				Str("source", s.Source).
				Int("offset", cur).
				Msg("directive scan exceeded iteration cap")
			return Match{}, false, errors.Newf(errors.ErrProcedural,
				"directive scan in '%s' exceeded %d iterations", s.Source, MaxIterations)
		}
		if cur >= to {
			return Match{}, false, nil
		}

		span, err := textscan.Enclosed(text, OpenMarker, CloseMarker, cur, to, s.AbsorbNewlines)
		if err != nil {
			return Match{}, false, errors.Wrapf(err, errors.ErrSyntax,
				"directive has no closing '%s' in source file '%s'", CloseMarker, s.Source)
		}
		if !span.Found() {
			return Match{}, false, nil
		}
		if strings.Contains(span.Value, OpenMarker) {
			return Match{}, false, errors.Newf(errors.ErrSyntax,
				"directive '%s' contains extra '%s' in source file '%s'", span.Value, OpenMarker, s.Source).
				WithDetail("offset", span.Start)
		}

		d, err := Parse(span.Value)
		if err != nil {
			return Match{}, false, errors.Wrapf(err, errors.ErrSyntax,
				"malformed directive '%s' in source file '%s'", span.Value, s.Source)
		}
		if want(d) {
			return Match{Directive: d, Start: span.Start, End: span.End}, true, nil
		}
		cur = span.End
	}
}
