package textscan

import (
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/errors"
)

// Span is one marker-delimited substring. Start is the offset of the open
// marker and End the offset just past the close marker (plus any absorbed
// line break). Start is -1 when nothing was found.
type Span struct {
	Value string
	Start int
	End   int
}

// Found reports whether the span refers to an actual match
func (s Span) Found() bool {
	return s.Start >= 0
}

// Enclosed returns the first substring of data delimited by open and close
// that lies inside [from, to). A negative to means the end of data.
//
// An open marker with no close marker before to is a syntax error. When
// absorbNewlines is set, a line break directly after the close marker is
// included in End (see AbsorbNewline).
func Enclosed(data, open, close string, from, to int, absorbNewlines bool) (Span, error) {
	notFound := Span{Start: -1, End: -1}
	if to < 0 || to > len(data) {
		to = len(data)
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		return notFound, nil
	}

	rel := strings.Index(data[from:to], open)
	if rel == -1 {
		return notFound, nil
	}
	start := from + rel
	contentStart := start + len(open)

	closeRel := strings.Index(data[contentStart:to], close)
	if closeRel == -1 {
		return Span{Start: start, End: -1}, errors.Newf(errors.ErrSyntax,
			"'%s' at offset %d has no closing '%s'", open, start, close).
			WithDetail("offset", start)
	}
	closeStart := contentStart + closeRel
	end := closeStart + len(close)
	if absorbNewlines {
		end = AbsorbNewline(data, end)
	}

	return Span{
		Value: data[contentStart:closeStart],
		Start: start,
		End:   end,
	}, nil
}

// AbsorbNewline advances pos past a line break that starts at pos. It looks
// at no more than two characters: a first CR or LF is consumed, and a second
// CR or LF is consumed only if it differs from the first. "\r\n" and "\n\r"
// are absorbed whole, "\n\n" only loses its first character.
func AbsorbNewline(data string, pos int) int {
	if pos >= len(data) || !isLineBreak(data[pos]) {
		return pos
	}
	first := data[pos]
	pos++
	if pos < len(data) && isLineBreak(data[pos]) && data[pos] != first {
		pos++
	}
	return pos
}

func isLineBreak(c byte) bool {
	return c == '\r' || c == '\n'
}

// Extract removes the first open/close span from data and returns its
// content together with the remaining text. When no span exists, ok is
// false and remainder is data unchanged.
func Extract(data, open, close string) (value, remainder string, ok bool, err error) {
	span, err := Enclosed(data, open, close, 0, -1, false)
	if err != nil {
		return "", data, false, err
	}
	if !span.Found() {
		return "", data, false, nil
	}
	return span.Value, data[:span.Start] + data[span.End:], true, nil
}
