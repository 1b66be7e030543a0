package style

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/lollywiz/pkg/directive"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/executor"
	"github.com/arthur-debert/lollywiz/pkg/instructions"
	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		level    int
		expected string
	}{
		{name: "no indent", text: "Hello", level: 0, expected: "Hello"},
		{name: "one level", text: "Hello", level: 1, expected: "  Hello"},
		{name: "two levels", text: "Hello", level: 2, expected: "    Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Indent(tt.text, tt.level))
		})
	}
}

func TestKindStyle(t *testing.T) {
	for _, k := range []directive.Kind{directive.Copy, directive.Inst, directive.Mkdir, directive.Remove} {
		assert.Contains(t, KindStyle(k).Render(k.String()), k.String())
	}
}

func TestRenderPlan(t *testing.T) {
	r := NewTerminalRenderer()
	list := []instructions.Instruction{
		{Kind: directive.Mkdir, Args: []string{"src"}},
		{Kind: directive.Inst, Args: []string{"main.tpl", "src/main.go"}},
	}

	out := r.RenderPlan("0.1.0", list)
	assert.Contains(t, out, "Instructions")
	assert.Contains(t, out, "0.1.0")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "mkdir")
	assert.Contains(t, out, "src/main.go")

	assert.Contains(t, r.RenderPlan("", nil), "No instructions")
}

func TestRenderReport(t *testing.T) {
	r := NewTerminalRenderer()
	report := executor.Report{Steps: []executor.Step{
		{Instruction: instructions.Instruction{Kind: directive.Mkdir, Args: []string{"a"}}, Dest: "/d/a", Outcome: executor.Applied},
		{Instruction: instructions.Instruction{Kind: directive.Mkdir, Args: []string{"b"}}, Dest: "/d/b", Outcome: executor.Unchanged, Message: "already a directory"},
		{Instruction: instructions.Instruction{Kind: directive.Copy, Args: []string{"x", "y"}}, Src: "/s/x", Dest: "/d/y", Outcome: executor.Failed, Error: fmt.Errorf("boom")},
	}}

	out := r.RenderReport(report)
	assert.Contains(t, out, "Instantiated")
	assert.Contains(t, out, "/s/x")
	assert.Contains(t, out, "already a directory")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "1 applied")
	assert.Contains(t, out, "1 failed")
}

func TestRenderReportDryRun(t *testing.T) {
	r := NewTerminalRenderer()
	report := executor.Report{DryRun: true, Steps: []executor.Step{
		{Instruction: instructions.Instruction{Kind: directive.Remove, Args: []string{"a"}}, Dest: "/d/a", Outcome: executor.Planned},
	}}

	out := r.RenderReport(report)
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "1 instruction(s) planned")

	assert.Contains(t, r.RenderReport(executor.Report{}), "No instructions")
}

func TestRenderError(t *testing.T) {
	r := NewTerminalRenderer()
	assert.Empty(t, r.RenderError(nil))

	err := errors.New(errors.ErrVersion, "too new").
		WithDetail("engine", "0.1.0").
		WithDetail("declared", "0.2.0")
	out := r.RenderError(err)
	assert.Contains(t, out, "too new")
	assert.Less(t, strings.Index(out, "declared"), strings.Index(out, "engine"))
}
