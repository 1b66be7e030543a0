package instructions

import (
	"github.com/arthur-debert/lollywiz/pkg/directive"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// StripComments removes every /* ... */ span from text. Comments do not
// nest: the first close marker ends the comment. A comment that is never
// closed is a syntax error.
func StripComments(text string) (string, error) {
	for i := 0; i < directive.MaxIterations; i++ {
		_, rest, ok, err := textscan.Extract(text, CommentOpen, CommentClose)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrSyntax, "unterminated comment")
		}
		if !ok {
			return rest, nil
		}
		text = rest
	}
	return "", errors.Newf(errors.ErrProcedural,
		"comment removal exceeded %d iterations", directive.MaxIterations)
}
