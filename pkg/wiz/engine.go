package wiz

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/lollywiz/pkg/conditional"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/executor"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/instructions"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/arthur-debert/lollywiz/pkg/replacements"
	"github.com/rs/zerolog"
)

// Engine instantiates one template into one destination
type Engine struct {
	fs            filesystem.FS
	now           func() time.Time
	engineVersion string
	libraryDir    string
	dryRun        bool
	logger        zerolog.Logger

	srcRoot  string
	destRoot string
	defs     conditional.Definitions
	repl     *replacements.Map

	// inputs of the last successful parse
	parsedSrc  string
	parsedDefs conditional.Definitions
	parsedRepl *replacements.Map
	doc        *instructions.Document

	state  State
	err    error
	report executor.Report
}

// Option configures an Engine
type Option func(*Engine)

// WithFS replaces the OS filesystem
func WithFS(fs filesystem.FS) Option {
	return func(e *Engine) { e.fs = fs }
}

// WithClock sets the time source of the date replacements
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithEngineVersion overrides the instruction file format version the
// engine claims to support
func WithEngineVersion(v string) Option {
	return func(e *Engine) { e.engineVersion = v }
}

// WithLibrary sets the directory SetSourceFromLibrary looks in
func WithLibrary(dir string) Option {
	return func(e *Engine) { e.libraryDir = dir }
}

// WithDryRun makes Instantiate report what it would do without writing
func WithDryRun(on bool) Option {
	return func(e *Engine) { e.dryRun = on }
}

// WithLogger replaces the "wiz" component logger
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an engine with no source or destination
func New(opts ...Option) *Engine {
	e := &Engine{
		fs:            filesystem.NewOS(),
		now:           time.Now,
		engineVersion: instructions.EngineVersion,
		logger:        logging.GetLogger("wiz"),
		defs:          conditional.NewDefinitions(),
		repl:          replacements.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetSource selects the template directory. It must be a directory holding
// an instruction file. The error register is cleared first, so a failed
// source leaves only its own error behind.
func (e *Engine) SetSource(dir string) error {
	e.err = nil
	if filesystem.TypeOf(e.fs, dir) != filesystem.Dir {
		return e.fail(errors.Newf(errors.ErrFile, "template source '%s' is not a directory", dir))
	}
	file := filepath.Join(dir, instructions.FileName)
	if filesystem.TypeOf(e.fs, file) != filesystem.File {
		return e.fail(errors.Newf(errors.ErrFile, "template source '%s' has no '%s'", dir, instructions.FileName))
	}

	e.srcRoot = dir
	if dir != e.parsedSrc {
		e.state = Unparsed
	}
	e.logger.Debug().Str("source", dir).Msg("Template source set")
	return nil
}

// SetSourceFromLibrary selects the template called name in the library
// directory
func (e *Engine) SetSourceFromLibrary(name string) error {
	dir, err := e.LibraryPath(name)
	if err != nil {
		e.err = nil
		return e.fail(err)
	}
	return e.SetSource(dir)
}

// LibraryPath resolves a template name to its directory in the library
func (e *Engine) LibraryPath(name string) (string, error) {
	if e.libraryDir == "" {
		return "", errors.New(errors.ErrInvalidInput, "no template library configured")
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid template name '%s'", name)
	}
	return filepath.Join(e.libraryDir, name), nil
}

// SetDestination selects the directory the template is instantiated into.
// It does not have to exist yet, but must not be something other than a
// directory.
func (e *Engine) SetDestination(dir string) error {
	if dir == "" {
		return e.fail(errors.New(errors.ErrInvalidInput, "destination must not be empty"))
	}
	if t := filesystem.TypeOf(e.fs, dir); t != filesystem.None && t != filesystem.Dir {
		return e.fail(errors.Newf(errors.ErrFile, "destination '%s' is a %s, not a directory", dir, t))
	}
	e.destRoot = dir
	e.logger.Debug().Str("destination", dir).Msg("Destination set")
	return nil
}

// SetDefinitions replaces the condition names that count as true
func (e *Engine) SetDefinitions(defs conditional.Definitions) {
	e.defs = conditional.NewDefinitions(defs.Names()...)
}

// SetReplacements replaces the caller's replacement map. Caller values win
// over the common replacements and the instruction file defaults.
func (e *Engine) SetReplacements(m *replacements.Map) {
	e.repl = m.Clone()
}

// Parse processes the instruction file without executing it. A parse that
// is still valid for the current inputs is not repeated.
func (e *Engine) Parse() error {
	if e.err != nil {
		return e.err
	}
	if !e.needsParse() {
		return nil
	}
	if e.srcRoot == "" {
		return e.fail(errors.New(errors.ErrProcedural, "template source dir must be set before parsing"))
	}

	done := logging.LogOperationStart(e.logger, "parse instruction file")
	defer done()

	file := filepath.Join(e.srcRoot, instructions.FileName)
	data, err := e.fs.ReadFile(file)
	if err != nil {
		return e.fail(errors.Wrapf(err, errors.ErrFile, "can't read instruction file '%s'", file))
	}

	repl := e.repl.Clone()
	repl.Merge(replacements.Common(e.now()))

	doc, err := instructions.Process(string(data), instructions.Options{
		Source:        file,
		Definitions:   e.defs,
		Replacements:  repl,
		EngineVersion: e.engineVersion,
	})
	if err != nil {
		return e.fail(err)
	}

	e.doc = doc
	e.parsedSrc = e.srcRoot
	e.parsedDefs = conditional.NewDefinitions(e.defs.Names()...)
	e.parsedRepl = e.repl.Clone()
	e.state = Parsed

	e.logger.Info().
		Str("source", e.srcRoot).
		Str("version", doc.Version).
		Int("instructions", len(doc.Instructions)).
		Msg("Instruction file parsed")
	return nil
}

func (e *Engine) needsParse() bool {
	return e.doc == nil ||
		e.parsedSrc != e.srcRoot ||
		!e.parsedDefs.Equal(e.defs) ||
		!e.parsedRepl.Equal(e.repl)
}

// Instantiate parses if needed and executes the instructions against the
// destination. It refuses to run while the error register is set.
func (e *Engine) Instantiate() error {
	if e.err != nil {
		return e.err
	}
	if e.srcRoot == "" {
		return e.fail(errors.New(errors.ErrProcedural, "template source dir must be set before instantiating"))
	}
	if e.destRoot == "" {
		return e.fail(errors.New(errors.ErrProcedural, "destination dir must be set before instantiating"))
	}
	if err := e.Parse(); err != nil {
		return err
	}

	e.state = Executing
	ex := executor.New(executor.Options{
		FS:           e.fs,
		SourceRoot:   e.srcRoot,
		DestRoot:     e.destRoot,
		Definitions:  e.defs,
		Replacements: e.doc.Replacements,
		DryRun:       e.dryRun,
	})
	report, err := ex.Run(e.doc.Instructions)
	e.report = report
	if err != nil {
		return e.fail(err)
	}
	e.state = Done
	return nil
}

// fail stores err in the register unless it already holds one and halts
// the engine. It returns the register content.
func (e *Engine) fail(err error) error {
	if e.err == nil {
		e.err = err
		e.logger.Error().
			Err(err).
			Str("kind", KindOf(err).String()).
			Msg("Engine halted")
	}
	e.state = Halted
	return e.err
}

// Err returns the error register
func (e *Engine) Err() error {
	return e.err
}

// Kind returns the kind of the error in the register
func (e *Engine) Kind() ErrorKind {
	return KindOf(e.err)
}

// ClearError empties the register so the engine can be used again
func (e *Engine) ClearError() {
	e.err = nil
	if e.doc != nil {
		e.state = Parsed
	} else {
		e.state = Unparsed
	}
}

// State returns the lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Report returns the steps of the last Instantiate
func (e *Engine) Report() executor.Report {
	return e.report
}

// Document returns the last parsed instruction file, nil before a parse
func (e *Engine) Document() *instructions.Document {
	return e.doc
}
