package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/executor"
	"github.com/arthur-debert/lollywiz/pkg/instructions"
)

// TerminalRenderer renders engine results for a terminal
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderPlan renders a parsed instruction list, numbered in execution order
func (r *TerminalRenderer) RenderPlan(version string, list []instructions.Instruction) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Instructions"))
	if version != "" {
		b.WriteString(" " + MutedStyle.Render("(format "+version+")"))
	}
	b.WriteString("\n\n")

	if len(list) == 0 {
		b.WriteString(MutedStyle.Render("No instructions"))
		return b.String()
	}
	for i, inst := range list {
		kind := KindStyle(inst.Kind).Render(inst.Kind.String())
		args := make([]string, len(inst.Args))
		for j, a := range inst.Args {
			args[j] = PathStyle.Render(a)
		}
		fmt.Fprintf(&b, "%3d. %s %s\n", i+1, kind, strings.Join(args, " "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderReport renders the steps of a run followed by a summary line
func (r *TerminalRenderer) RenderReport(report executor.Report) string {
	if len(report.Steps) == 0 {
		return MutedStyle.Render("No instructions to execute")
	}

	var b strings.Builder
	title := "Instantiated"
	if report.DryRun {
		title = "Dry run"
	}
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	for _, step := range report.Steps {
		b.WriteString(r.renderStep(step) + "\n")
	}

	b.WriteString("\n" + r.summary(report))
	return b.String()
}

func (r *TerminalRenderer) renderStep(step executor.Step) string {
	var indicator string
	switch step.Outcome {
	case executor.Applied:
		indicator = SuccessIndicator
	case executor.Unchanged:
		indicator = InfoIndicator
	case executor.Planned:
		indicator = PendingIndicator
	default:
		indicator = ErrorIndicator
	}

	kind := KindStyle(step.Instruction.Kind).Render(step.Instruction.Kind.String())
	target := PathStyle.Render(step.Dest)
	if step.Src != "" {
		target = PathStyle.Render(step.Src) + " → " + target
	}
	line := fmt.Sprintf("%s %s %s", indicator, kind, target)
	if step.Outcome == executor.Failed && step.Error != nil {
		line += "\n" + Indent(ErrorStyle.Render(step.Error.Error()), 2)
	} else if step.Message != "" {
		line += " " + MutedStyle.Render("("+step.Message+")")
	}
	return line
}

func (r *TerminalRenderer) summary(report executor.Report) string {
	if report.DryRun {
		return MutedStyle.Render(fmt.Sprintf("%d instruction(s) planned, nothing was written", report.Count(executor.Planned)))
	}
	parts := []string{
		fmt.Sprintf("%d applied", report.Count(executor.Applied)),
		fmt.Sprintf("%d unchanged", report.Count(executor.Unchanged)),
	}
	if n := report.Count(executor.Failed); n > 0 {
		parts = append(parts, ErrorStyle.Render(fmt.Sprintf("%d failed", n)))
	}
	return strings.Join(parts, ", ")
}

// RenderError renders an error followed by its details, sorted by key
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	out := ErrorStyle.Render(fmt.Sprintf("Error: %v", err))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out += "\n" + Indent(MutedStyle.Render(fmt.Sprintf("%s: %v", k, details[k])), 1)
	}
	return out
}
