package lollywiz

import (
	"os"

	"github.com/arthur-debert/lollywiz/pkg/archive"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/arthur-debert/lollywiz/pkg/wiz"
	"github.com/spf13/cobra"
)

// sourceFlags are the flags shared by the commands that read a template
type sourceFlags struct {
	defines     []string
	sets        []string
	library     bool
	fromArchive bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.defines, "define", "D", nil, MsgFlagDefine)
	cmd.Flags().StringArrayVarP(&f.sets, "set", "s", nil, MsgFlagSet)
	cmd.Flags().BoolVarP(&f.library, "library", "l", false, MsgFlagLibrary)
	cmd.Flags().StringP("library-dir", "L", "", MsgFlagLibraryDir)
	cmd.Flags().BoolVar(&f.fromArchive, "from-archive", false, MsgFlagFromArchive)
	cmd.MarkFlagsMutuallyExclusive("library", "from-archive")
}

// newEngine builds an engine with its source, definitions and replacements
// set. The returned cleanup removes the directory a packed template was
// unpacked to and must be called once the engine is done.
func (a *app) newEngine(fsys filesystem.FS, src string, f sourceFlags, extra ...wiz.Option) (*wiz.Engine, func(), error) {
	cleanup := func() {}
	logger := logging.WithFields(map[string]interface{}{
		"component": "cli",
		"source":    src,
	})

	opts := append([]wiz.Option{
		wiz.WithFS(fsys),
		wiz.WithLibrary(a.cfg.LibraryDir()),
	}, extra...)
	engine := wiz.New(opts...)

	defs := a.cfg.Definitions(f.defines...)
	repl, err := a.cfg.ReplacementMap(f.sets)
	if err != nil {
		return nil, cleanup, err
	}
	engine.SetDefinitions(defs)
	engine.SetReplacements(repl)

	switch {
	case f.fromArchive:
		dir, err := unpackTemplate(fsys, src)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = fsys.RemoveAll(dir) }
		logger.Debug().Str("dir", dir).Msg("Packed template unpacked")
		if err := engine.SetSource(dir); err != nil {
			return nil, cleanup, err
		}
	case f.library:
		logger.Info().Msgf(MsgUsingLibraryFrom, src, a.cfg.LibraryDir())
		if err := engine.SetSourceFromLibrary(src); err != nil {
			return nil, cleanup, err
		}
	default:
		if err := engine.SetSource(src); err != nil {
			return nil, cleanup, err
		}
	}

	logger.Debug().
		Strs("defines", defs.Names()).
		Strs("replacements", repl.Keys()).
		Msg("Engine ready")
	return engine, cleanup, nil
}

// unpackTemplate extracts a packed template into a fresh temporary directory
func unpackTemplate(fsys filesystem.FS, path string) (string, error) {
	format, err := archive.FormatFor(path)
	if err != nil {
		return "", err
	}
	in, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFile, "can't open template archive '%s'", path)
	}
	defer func() { _ = in.Close() }()

	dir, err := os.MkdirTemp("", "lollywiz-template-*")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFile, "can't create a directory to unpack into")
	}
	if err := archive.Unpack(in, format, fsys, dir); err != nil {
		_ = fsys.RemoveAll(dir)
		return "", err
	}
	return dir, nil
}

// packDir writes the tree under dir to the archive at path
func packDir(fsys filesystem.FS, dir, path string) error {
	format, err := archive.FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFile, "can't create archive '%s'", path)
	}
	if err := archive.PackDir(fsys, dir, out, format); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFile, "can't write archive '%s'", path)
	}
	return nil
}
