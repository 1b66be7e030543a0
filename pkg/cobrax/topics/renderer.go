package topics

import "strings"

// Renderer turns a topic's raw content into terminal output. ext is the
// topic file's extension, dot included.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer prints topics as written, ending them with a newline so
// the shell prompt lands on its own line
type PlainRenderer struct{}

func (PlainRenderer) Render(content, ext string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
