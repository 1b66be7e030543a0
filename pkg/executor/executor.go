package executor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/lollywiz/pkg/conditional"
	"github.com/arthur-debert/lollywiz/pkg/directive"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/instructions"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/arthur-debert/lollywiz/pkg/replacements"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// FS defaults to the OS filesystem
	FS filesystem.FS

	SourceRoot string
	DestRoot   string

	// Definitions and Replacements are applied to every inst template
	Definitions  conditional.Definitions
	Replacements *replacements.Map

	DryRun bool
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Executor applies instructions to the destination tree
type Executor struct {
	fs           filesystem.FS
	srcRoot      string
	destRoot     string
	definitions  conditional.Definitions
	replacements *replacements.Map
	dryRun       bool
	logger       zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		fs:           fs,
		srcRoot:      opts.SourceRoot,
		destRoot:     opts.DestRoot,
		definitions:  opts.Definitions,
		replacements: opts.Replacements,
		dryRun:       opts.DryRun,
		logger:       logger,
	}
}

// Run executes list in order and stops at the first failing instruction,
// whose error is returned. The report holds every attempted step including
// the failed one. Instructions are not modified, so the same list can be
// run again.
func (e *Executor) Run(list []instructions.Instruction) (Report, error) {
	done := logging.LogOperationStart(e.logger, "run instructions")
	defer done()

	report := Report{DryRun: e.dryRun}
	for _, inst := range list {
		step := e.execute(inst)
		report.Steps = append(report.Steps, step)
		if step.Error != nil {
			e.logger.Error().
				Err(step.Error).
				Str("instruction", inst.String()).
				Msg("Instruction failed")
			return report, step.Error
		}
	}

	e.logger.Info().
		Int("applied", report.Count(Applied)).
		Int("unchanged", report.Count(Unchanged)).
		Int("planned", report.Count(Planned)).
		Msg("Instructions executed")
	return report, nil
}

func (e *Executor) execute(inst instructions.Instruction) Step {
	start := time.Now()
	step := Step{Instruction: inst, Dest: filepath.Join(e.destRoot, inst.Dest())}
	if inst.Kind == directive.Copy || inst.Kind == directive.Inst {
		step.Src = filepath.Join(e.srcRoot, inst.Src())
	}

	e.logger.Debug().
		Str("kind", inst.Kind.String()).
		Str("src", step.Src).
		Str("dest", step.Dest).
		Bool("dry_run", e.dryRun).
		Msg("Executing instruction")

	var err error
	switch inst.Kind {
	case directive.Copy:
		step.Outcome, err = e.copy(step.Src, step.Dest)
	case directive.Remove:
		step.Outcome, err = e.remove(step.Dest)
	case directive.Mkdir:
		step.Outcome, err = e.mkdir(step.Dest)
	case directive.Inst:
		step.Outcome, err = e.inst(step.Src, step.Dest)
	default:
		err = errors.Newf(errors.ErrSyntax, "unknown instruction '%s'", inst.Kind)
	}
	if err != nil {
		step.Outcome = Failed
		step.Error = err
		step.Message = err.Error()
	}
	step.Duration = time.Since(start)
	return step
}

func (e *Executor) copy(src, dest string) (Outcome, error) {
	srcType := filesystem.TypeOf(e.fs, src)
	if srcType == filesystem.None {
		return Failed, errors.Newf(errors.ErrFile, "required source '%s' doesn't exist", src)
	}
	if e.dryRun {
		return Planned, nil
	}

	if filesystem.Exists(e.fs, dest) {
		if err := e.fs.RemoveAll(dest); err != nil {
			e.logger.Debug().Err(err).Str("path", dest).Msg("Removing old destination failed")
		}
		if filesystem.Exists(e.fs, dest) {
			return Failed, errors.Newf(errors.ErrFile, "can't delete file or folder '%s'", dest)
		}
	}

	var err error
	switch srcType {
	case filesystem.Dir:
		err = filesystem.CopyTree(e.fs, src, dest)
	case filesystem.File:
		err = filesystem.CopyFile(e.fs, src, dest)
	default:
		// dangling links and special files are not copied
		e.logger.Warn().Str("src", src).Str("type", srcType.String()).Msg("Source is not a file or directory")
	}
	if err != nil {
		return Failed, errors.Wrapf(err, errors.ErrFile, "can't copy '%s' to '%s'", src, dest)
	}
	if !filesystem.Exists(e.fs, dest) {
		return Failed, errors.Newf(errors.ErrFile, "'%s' does not exist after copying '%s'", dest, src)
	}
	return Applied, nil
}

func (e *Executor) remove(path string) (Outcome, error) {
	if !filesystem.Exists(e.fs, path) {
		return Unchanged, nil
	}
	if e.dryRun {
		return Planned, nil
	}
	if err := e.fs.RemoveAll(path); err != nil {
		e.logger.Debug().Err(err).Str("path", path).Msg("Remove failed")
	}
	if filesystem.Exists(e.fs, path) {
		return Failed, errors.Newf(errors.ErrFile, "can't delete file or folder '%s'", path)
	}
	return Applied, nil
}

func (e *Executor) mkdir(path string) (Outcome, error) {
	switch t := filesystem.TypeOf(e.fs, path); t {
	case filesystem.Dir:
		return Unchanged, nil
	case filesystem.None:
	case filesystem.File, filesystem.Symlink:
		if e.dryRun {
			return Planned, nil
		}
		if err := e.fs.Remove(path); err != nil {
			return Failed, errors.Wrapf(err, errors.ErrFile, "mkdir can't remove existing %s '%s'", t, path)
		}
	default:
		return Failed, errors.Newf(errors.ErrSyntax, "mkdir can't replace existing %s '%s'", t, path)
	}
	if e.dryRun {
		return Planned, nil
	}

	if err := e.fs.MkdirAll(path, 0755); err != nil {
		return Failed, errors.Wrapf(err, errors.ErrFile, "can't create folder '%s'", path)
	}
	if filesystem.TypeOf(e.fs, path) != filesystem.Dir {
		return Failed, errors.Newf(errors.ErrFile, "folder '%s' does not exist after mkdir", path)
	}
	return Applied, nil
}

func (e *Executor) inst(src, dest string) (Outcome, error) {
	info, err := e.fs.Stat(src)
	if err != nil {
		return Failed, errors.Wrapf(err, errors.ErrFile, "can't read file '%s'", src)
	}
	data, err := e.fs.ReadFile(src)
	if err != nil {
		return Failed, errors.Wrapf(err, errors.ErrFile, "can't read file '%s'", src)
	}

	text, err := conditional.NewParser(src).Resolve(string(data), e.definitions)
	if err != nil {
		return Failed, err
	}
	text = e.replacements.Apply(text)
	if e.dryRun {
		return Planned, nil
	}

	dir := filepath.Dir(dest)
	if err := e.fs.MkdirAll(dir, 0755); err != nil || filesystem.TypeOf(e.fs, dir) != filesystem.Dir {
		return Failed, errors.Newf(errors.ErrFile, "can't create folder '%s'", dir)
	}
	if err := e.fs.WriteFile(dest, []byte(text), info.Mode().Perm()); err != nil {
		return Failed, errors.Wrapf(err, errors.ErrFile, "can't write file '%s'", dest)
	}
	if !filesystem.Exists(e.fs, dest) {
		return Failed, errors.Newf(errors.ErrFile, "'%s' does not exist after writing", dest)
	}

	e.logger.Debug().
		Str("src", src).
		Str("dest", dest).
		Int("bytes", len(text)).
		Msg("Template instantiated")
	return Applied, nil
}

// Describe renders the instructions as they would run, for dry runs and
// the check command
func Describe(list []instructions.Instruction) []string {
	out := make([]string, len(list))
	for i, inst := range list {
		out[i] = fmt.Sprintf("%d. %s", i+1, inst)
	}
	return out
}
