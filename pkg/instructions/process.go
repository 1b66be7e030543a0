package instructions

import (
	"github.com/arthur-debert/lollywiz/pkg/conditional"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/arthur-debert/lollywiz/pkg/replacements"
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// Options are the inputs of Process
type Options struct {
	// Source names the file in error messages
	Source        string
	Definitions   conditional.Definitions
	Replacements  *replacements.Map
	EngineVersion string
}

// Document is a processed instruction file
type Document struct {
	// Version is the declared format version
	Version string
	// Replacements is the caller's map plus the file's defaults. The same
	// map is applied to every instantiated template.
	Replacements *replacements.Map
	Instructions []Instruction
}

// Process runs the whole pipeline over text. opts.Replacements is not
// modified.
func Process(text string, opts Options) (*Document, error) {
	logger := logging.GetLogger("instructions")
	if opts.EngineVersion == "" {
		opts.EngineVersion = EngineVersion
	}
	if opts.Source == "" {
		opts.Source = FileName
	}

	text, err := StripComments(text)
	if err != nil {
		return nil, err
	}

	text, err = conditional.NewParser(opts.Source).Resolve(text, opts.Definitions)
	if err != nil {
		return nil, err
	}

	lines := textscan.SplitLines(text)
	repl := opts.Replacements.Clone()
	lines, err = MergeDefaultReplacements(lines, repl)
	if err != nil {
		return nil, err
	}

	lines, version, err := checkVersion(lines, opts.EngineVersion)
	if err != nil {
		return nil, err
	}

	lines, err = InstructionSpan(repl.ApplyLines(lines))
	if err != nil {
		return nil, err
	}

	list, err := Parse(lines)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", opts.Source).
		Str("version", version).
		Int("replacements", repl.Len()).
		Int("instructions", len(list)).
		Msg("instruction file processed")

	return &Document{
		Version:      version,
		Replacements: repl,
		Instructions: list,
	}, nil
}
