package style

import (
	"github.com/arthur-debert/lollywiz/pkg/directive"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Instruction styles
var (
	CopyStyle = lipgloss.NewStyle().
			Foreground(CopyColor).
			Bold(true)

	InstStyle = lipgloss.NewStyle().
			Foreground(InstColor).
			Bold(true)

	MkdirStyle = lipgloss.NewStyle().
			Foreground(MkdirColor).
			Bold(true)

	RemoveStyle = lipgloss.NewStyle().
			Foreground(RemoveColor).
			Bold(true)
)

// Step indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	PendingIndicator = MutedStyle.Render("○")
	InfoIndicator    = InfoStyle.Render("•")
)

// KindStyle returns the style an instruction command is printed with
func KindStyle(k directive.Kind) lipgloss.Style {
	switch k {
	case directive.Copy:
		return CopyStyle
	case directive.Inst:
		return InstStyle
	case directive.Mkdir:
		return MkdirStyle
	case directive.Remove:
		return RemoveStyle
	default:
		return InfoStyle
	}
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
