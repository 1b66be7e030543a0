package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// DefaultWrap is the column glamour wraps markdown topics at
const DefaultWrap = 80

// GlamourRenderer renders markdown topics with glamour. Other extensions,
// and markdown glamour fails on, go through PlainRenderer.
type GlamourRenderer struct {
	// Style is a glamour standard style name or a path to a JSON style.
	// Empty or "auto" picks light or dark from the terminal background.
	Style string
	// Wrap is the word wrap column; zero or less disables wrapping
	Wrap int

	once sync.Once
	term *glamour.TermRenderer
	err  error
}

// NewGlamourRenderer returns a renderer with automatic styling, or the
// colourless "notty" style when NO_COLOR is set
func NewGlamourRenderer() *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto", Wrap: DefaultWrap}
	if termenv.EnvNoColor() {
		r.Style = "notty"
	}
	return r
}

func (r *GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return PlainRenderer{}.Render(content, ext)
	}
	r.once.Do(r.build)
	if r.err != nil {
		return PlainRenderer{}.Render(content, ext)
	}
	out, err := r.term.Render(content)
	if err != nil {
		return PlainRenderer{}.Render(content, ext)
	}
	return out
}

func (r *GlamourRenderer) build() {
	var opts []glamour.TermRendererOption
	if r.Wrap > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Wrap))
	}
	if r.Style == "" || r.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	r.term, r.err = glamour.NewTermRenderer(opts...)
}
