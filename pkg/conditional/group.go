package conditional

// Block is one branch of a group. Start is the offset of its directive,
// DirectiveEnd the offset just after it and End the start of the next
// directive in the group. The body is text[DirectiveEnd:End].
type Block struct {
	Start        int
	DirectiveEnd int
	End          int
	IsTrue       bool
}

// Body returns the block's content within text
func (b Block) Body(text string) string {
	return text[b.DirectiveEnd:b.End]
}

// Span is a half-open [Start, End) range of text
type Span struct {
	Start int
	End   int
}

// Group is one if...endif structure: the if block, any elif blocks and an
// optional else block, in document order, plus the span of its endif.
type Group struct {
	Blocks []Block
	Endif  Span
}

// Start is the offset of the group's if directive
func (g Group) Start() int {
	return g.Blocks[0].Start
}

// Winner returns the block chosen for output, if any
func (g Group) Winner() (Block, bool) {
	for _, b := range g.Blocks {
		if b.IsTrue {
			return b, true
		}
	}
	return Block{}, false
}
