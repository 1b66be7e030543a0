package conditional

import "strings"

// Render rebuilds text from its parsed groups. Text outside every group is
// copied verbatim; each group contributes only the body of its winning
// block, or nothing when no block won.
func Render(text string, groups []Group) string {
	var b strings.Builder
	b.Grow(len(text))

	cur := 0
	for _, g := range groups {
		b.WriteString(text[cur:g.Start()])
		if w, ok := g.Winner(); ok {
			b.WriteString(w.Body(text))
		}
		cur = g.Endif.End
	}
	b.WriteString(text[cur:])
	return b.String()
}

// Resolve parses and renders text in one step
func (p *Parser) Resolve(text string, defs Definitions) (string, error) {
	groups, err := p.ParseGroups(text, defs)
	if err != nil {
		return "", err
	}
	return Render(text, groups), nil
}

// Resolve resolves text with a default parser
func Resolve(text string, defs Definitions) (string, error) {
	return NewParser("<text>").Resolve(text, defs)
}
