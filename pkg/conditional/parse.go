package conditional

import (
	"github.com/arthur-debert/lollywiz/pkg/directive"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/logging"
)

// Parser finds conditional groups in a text
type Parser struct {
	scanner *directive.Scanner
}

// Option configures a Parser
type Option func(*Parser)

// WithNewlineAbsorption toggles removal of the line break that follows a
// directive, so a directive on its own line leaves no blank line behind.
// It is on by default.
func WithNewlineAbsorption(on bool) Option {
	return func(p *Parser) {
		p.scanner.AbsorbNewlines = on
	}
}

// NewParser returns a parser. source names the text in error messages.
func NewParser(source string, opts ...Option) *Parser {
	p := &Parser{scanner: directive.NewScanner(source)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseGroups parses text with a default parser
func ParseGroups(text string, defs Definitions) ([]Group, error) {
	return NewParser("<text>").ParseGroups(text, defs)
}

// ParseGroups scans text left to right and returns its groups in order.
// Text with no groups yields an empty list. Only an if opens a group, so an
// elif, else or endif met outside one is left in the text untouched. Nested
// groups and wrong argument counts are syntax errors.
func (p *Parser) ParseGroups(text string, defs Definitions) ([]Group, error) {
	logger := logging.GetLogger("conditional")
	source := p.scanner.Source

	var groups []Group
	cur := 0
	for i := 0; ; i++ {
		if i >= directive.MaxIterations {
			logger.Error().Str("source", source).Msg("group scan exceeded iteration cap")
			return nil, errors.Newf(errors.ErrProcedural,
				"conditional group scan in '%s' exceeded %d iterations", source, directive.MaxIterations)
		}

		// 1. next if
		ifm, ok, err := p.scanner.Find(text, directive.If.String(), cur, -1)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		group, err := p.parseGroup(text, ifm, defs)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
		cur = group.Endif.End
	}

	logger.Debug().
		Str("source", source).
		Int("groups", len(groups)).
		Msg("parsed conditional groups")
	return groups, nil
}

func (p *Parser) parseGroup(text string, ifm directive.Match, defs Definitions) (Group, error) {
	source := p.scanner.Source

	// 2. the if block
	if len(ifm.Args) != 1 {
		return Group{}, errors.Newf(errors.ErrSyntax,
			"'if' in source file '%s' must have exactly one argument", source).
			WithDetail("offset", ifm.Start)
	}
	blocks := []Block{{
		Start:        ifm.Start,
		DirectiveEnd: ifm.End,
		IsTrue:       defs.Has(ifm.Args[0]),
	}}

	// 3. the matching endif
	endm, ok, err := p.scanner.Find(text, directive.Endif.String(), ifm.End, -1)
	if err != nil {
		return Group{}, err
	}
	if !ok {
		return Group{}, errors.Newf(errors.ErrSyntax,
			"'if' directive does not have matching 'endif' in source file '%s'", source).
			WithDetail("offset", ifm.Start)
	}

	// 4. else, with nothing but elif before it and nothing at all after it
	elseBlockEnd := endm.Start
	var elseBlock *Block
	elsem, hasElse, err := p.scanner.Find(text, directive.Else.String(), ifm.End, endm.Start)
	if err != nil {
		return Group{}, err
	}
	if hasElse {
		if len(elsem.Args) != 0 {
			return Group{}, errors.Newf(errors.ErrSyntax,
				"'else' in source file '%s' must not have arguments", source).
				WithDetail("offset", elsem.Start)
		}
		clean, err := p.scanner.NoConditionals(text, elsem.End, endm.Start)
		if err != nil {
			return Group{}, err
		}
		if !clean {
			return Group{}, errors.Newf(errors.ErrSyntax,
				"there must be no directives between 'else' and 'endif' in source file '%s'", source).
				WithDetail("offset", elsem.Start)
		}
		elseBlockEnd = elsem.Start
		elseBlock = &Block{Start: elsem.Start, DirectiveEnd: elsem.End}
	}

	// 5. elif blocks up to the else (or endif); a nested if is not allowed
	if err := p.rejectNested(text, ifm.End, elseBlockEnd); err != nil {
		return Group{}, err
	}
	elifs, err := p.elifBlocks(text, ifm.End, elseBlockEnd, defs)
	if err != nil {
		return Group{}, err
	}

	// 6. single winner: the first true block in document order
	won := blocks[0].IsTrue
	for _, b := range elifs {
		if b.IsTrue {
			if won {
				b.IsTrue = false
			}
			won = true
		}
		blocks = append(blocks, b)
	}
	if elseBlock != nil {
		elseBlock.IsTrue = !won
		blocks = append(blocks, *elseBlock)
	}

	// 7. each block ends where the next begins, the last at endif
	for i := range blocks {
		if i+1 < len(blocks) {
			blocks[i].End = blocks[i+1].Start
		} else {
			blocks[i].End = endm.Start
		}
	}

	return Group{
		Blocks: blocks,
		Endif:  Span{Start: endm.Start, End: endm.End},
	}, nil
}

// rejectNested fails when [from, to) holds any conditional directive other
// than elif
func (p *Parser) rejectNested(text string, from, to int) error {
	m, found, err := p.scanner.FindFunc(text, from, to, func(d directive.Directive) bool {
		return d.Kind.IsConditional() && d.Kind != directive.Elif
	})
	if err != nil {
		return err
	}
	if found {
		return errors.Newf(errors.ErrSyntax,
			"unexpected '%s' inside conditional group in source file '%s'; groups do not nest",
			m.Name, p.scanner.Source).
			WithDetail("offset", m.Start)
	}
	return nil
}

func (p *Parser) elifBlocks(text string, from, to int, defs Definitions) ([]Block, error) {
	var blocks []Block
	cur := from
	for i := 0; ; i++ {
		if i >= directive.MaxIterations {
			return nil, errors.Newf(errors.ErrProcedural,
				"elif scan in '%s' exceeded %d iterations", p.scanner.Source, directive.MaxIterations)
		}
		m, ok, err := p.scanner.Find(text, directive.Elif.String(), cur, to)
		if err != nil {
			return nil, err
		}
		if !ok {
			return blocks, nil
		}
		if len(m.Args) != 1 {
			return nil, errors.Newf(errors.ErrSyntax,
				"'elif' in source file '%s' must have exactly one argument", p.scanner.Source).
				WithDetail("offset", m.Start)
		}
		blocks = append(blocks, Block{
			Start:        m.Start,
			DirectiveEnd: m.End,
			IsTrue:       defs.Has(m.Args[0]),
		})
		cur = m.End
	}
}
