package wiz

import (
	"io"
	"testing"
	"time"

	"github.com/arthur-debert/lollywiz/pkg/conditional"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/instructions"
	"github.com/arthur-debert/lollywiz/pkg/replacements"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicInstructions = `/* basic template */
LOLLYWIZ_TEXTFILE_VERSION = 0.1.0

#default_replacement_map_begin
project = sample
#default_replacement_map_end

#instructions_begin
mkdir [$$project$$]
inst main.tpl [$$project$$]/main.go
[##if with_license##]
copy LICENSE [$$project$$]/LICENSE
[##endif##]
#instructions_end
`

const mainTemplate = `// [$$project$$] (c) [$$__YEAR__$$]
package main
[##if with_license##]
// licensed
[##endif##]
`

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newTemplateFS(t *testing.T, instructionFile string) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/tpl", 0755))
	require.NoError(t, fsys.WriteFile("/tpl/"+instructions.FileName, []byte(instructionFile), 0644))
	require.NoError(t, fsys.WriteFile("/tpl/main.tpl", []byte(mainTemplate), 0644))
	require.NoError(t, fsys.WriteFile("/tpl/LICENSE", []byte("MIT"), 0644))
	return fsys
}

func newEngine(fsys filesystem.FS, opts ...Option) *Engine {
	opts = append([]Option{
		WithFS(fsys),
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(zerolog.New(io.Discard)),
	}, opts...)
	return New(opts...)
}

func readFile(t *testing.T, fsys filesystem.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, path)
	return string(data)
}

func TestInstantiate(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))
	e.SetDefinitions(conditional.NewDefinitions("with_license"))
	e.SetReplacements(replacements.New("project", "demo"))

	require.NoError(t, e.Instantiate())

	assert.Equal(t, Done, e.State())
	assert.Equal(t, NoError, e.Kind())
	assert.Equal(t, "// demo (c) 2024\npackage main\n// licensed\n", readFile(t, fsys, "/out/demo/main.go"))
	assert.Equal(t, "MIT", readFile(t, fsys, "/out/demo/LICENSE"))
	assert.Len(t, e.Report().Steps, 3)
}

func TestInstantiateUsesFileDefaults(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))

	require.NoError(t, e.Instantiate())

	assert.Equal(t, "// sample (c) 2024\npackage main\n", readFile(t, fsys, "/out/sample/main.go"))
	assert.False(t, filesystem.Exists(fsys, "/out/sample/LICENSE"))
}

func TestCallerOverridesCommonReplacements(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))
	e.SetReplacements(replacements.New("__YEAR__", "1999"))

	require.NoError(t, e.Instantiate())
	assert.Contains(t, readFile(t, fsys, "/out/sample/main.go"), "(c) 1999")
}

func TestSetSourceErrors(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	require.NoError(t, fsys.MkdirAll("/empty", 0755))

	for _, dir := range []string{"/missing", "/empty", "/tpl/LICENSE"} {
		t.Run(dir, func(t *testing.T) {
			e := newEngine(fsys)
			err := e.SetSource(dir)
			require.Error(t, err)
			assert.Equal(t, FileError, e.Kind())
			assert.Equal(t, Halted, e.State())
		})
	}
}

func TestSetSourceClearsRegister(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	require.Error(t, e.SetSource("/missing"))
	require.NoError(t, e.SetSource("/tpl"))
	assert.NoError(t, e.Err())
}

func TestSetDestinationErrors(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	err := e.SetDestination("/tpl/LICENSE")
	require.Error(t, err)
	assert.Equal(t, FileError, e.Kind())

	e.ClearError()
	err = e.SetDestination("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInstantiateWithoutRoots(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)

	e := newEngine(fsys)
	require.Error(t, e.Instantiate())
	assert.Equal(t, ProceduralError, e.Kind())

	e = newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.Error(t, e.Instantiate())
	assert.Equal(t, ProceduralError, e.Kind())
}

func TestRegisterBlocksUntilCleared(t *testing.T) {
	fsys := newTemplateFS(t, "LOLLYWIZ_TEXTFILE_VERSION = 9.9.9\n#instructions_begin\n#instructions_end\n")
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))

	first := e.Instantiate()
	require.Error(t, first)
	assert.Equal(t, VersionError, e.Kind())
	assert.Equal(t, Halted, e.State())

	// fixing the file is not enough while the register is set
	require.NoError(t, fsys.WriteFile("/tpl/"+instructions.FileName,
		[]byte("LOLLYWIZ_TEXTFILE_VERSION = 0.1.0\n#instructions_begin\nmkdir x\n#instructions_end\n"), 0644))
	assert.Equal(t, first, e.Instantiate())

	e.ClearError()
	assert.Equal(t, Unparsed, e.State())
	require.NoError(t, e.Instantiate())
	assert.Equal(t, filesystem.Dir, filesystem.TypeOf(fsys, "/out/x"))
}

func TestFirstErrorIsKept(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	first := e.SetDestination("")
	require.Error(t, first)
	second := e.SetDestination("/tpl/LICENSE")
	assert.Equal(t, first, second)
	assert.True(t, errors.IsErrorCode(e.Err(), errors.ErrInvalidInput))
}

func TestParseIsCachedUntilInputsChange(t *testing.T) {
	fsys := newTemplateFS(t, "LOLLYWIZ_TEXTFILE_VERSION = 0.1.0\n#instructions_begin\nmkdir one\n#instructions_end\n")
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))
	require.NoError(t, e.Parse())
	assert.Equal(t, Parsed, e.State())

	require.NoError(t, fsys.WriteFile("/tpl/"+instructions.FileName,
		[]byte("LOLLYWIZ_TEXTFILE_VERSION = 0.1.0\n#instructions_begin\nmkdir two\n#instructions_end\n"), 0644))

	require.NoError(t, e.Instantiate())
	assert.True(t, filesystem.Exists(fsys, "/out/one"))
	assert.False(t, filesystem.Exists(fsys, "/out/two"))

	// same definitions in a new set: still cached
	e.SetDefinitions(conditional.NewDefinitions())
	require.NoError(t, e.Instantiate())
	assert.False(t, filesystem.Exists(fsys, "/out/two"))

	e.SetDefinitions(conditional.NewDefinitions("anything"))
	require.NoError(t, e.Instantiate())
	assert.True(t, filesystem.Exists(fsys, "/out/two"))
}

func TestReplacementChangeTriggersParse(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))
	require.NoError(t, e.Instantiate())
	first := e.Document()

	require.NoError(t, e.Instantiate())
	assert.Same(t, first, e.Document())

	e.SetReplacements(replacements.New("project", "other"))
	require.NoError(t, e.Instantiate())
	assert.NotSame(t, first, e.Document())
	assert.True(t, filesystem.Exists(fsys, "/out/other/main.go"))
}

func TestSyntaxErrorKind(t *testing.T) {
	fsys := newTemplateFS(t, "LOLLYWIZ_TEXTFILE_VERSION = 0.1.0\n#instructions_begin\nexplode now\n#instructions_end\n")
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.Error(t, e.Parse())
	assert.Equal(t, SyntaxError, e.Kind())
	assert.Nil(t, e.Document())
}

func TestDryRun(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	e := newEngine(fsys, WithDryRun(true))
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))

	require.NoError(t, e.Instantiate())
	assert.True(t, e.Report().DryRun)
	assert.False(t, filesystem.Exists(fsys, "/out"))
}

func TestLibrary(t *testing.T) {
	fsys := newTemplateFS(t, basicInstructions)
	require.NoError(t, fsys.MkdirAll("/lib/basic", 0755))
	require.NoError(t, fsys.WriteFile("/lib/basic/"+instructions.FileName, []byte(basicInstructions), 0644))

	e := newEngine(fsys, WithLibrary("/lib"))
	require.NoError(t, e.SetSourceFromLibrary("basic"))

	for _, bad := range []string{"", "..", "a/b", `a\b`} {
		e.ClearError()
		err := e.SetSourceFromLibrary(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}

	e.ClearError()
	assert.Error(t, e.SetSourceFromLibrary("missing"))
	assert.Equal(t, FileError, e.Kind())

	_, err := newEngine(fsys).LibraryPath("basic")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, NoError, KindOf(nil))
	assert.Equal(t, SyntaxError, KindOf(errors.New(errors.ErrSyntax, "x")))
	assert.Equal(t, FileError, KindOf(errors.New(errors.ErrFile, "x")))
	assert.Equal(t, VersionError, KindOf(errors.New(errors.ErrVersion, "x")))
	assert.Equal(t, ProceduralError, KindOf(errors.New(errors.ErrProcedural, "x")))
	assert.Equal(t, ProceduralError, KindOf(io.EOF))
	assert.Equal(t, "version", VersionError.String())
	assert.Equal(t, "halted", Halted.String())
}

func TestMalformedQuotingRunsNothing(t *testing.T) {
	fsys := newTemplateFS(t, "LOLLYWIZ_TEXTFILE_VERSION = 0.1.0\n#instructions_begin\nmkdir first\nmycmd \"a\" \"b\n#instructions_end\n")
	e := newEngine(fsys)
	require.NoError(t, e.SetSource("/tpl"))
	require.NoError(t, e.SetDestination("/out"))

	require.Error(t, e.Instantiate())
	assert.Equal(t, SyntaxError, e.Kind())
	assert.Equal(t, Halted, e.State())
	assert.Empty(t, e.Report().Steps)
	assert.False(t, filesystem.Exists(fsys, "/out/first"))
}

func TestCommentsDoNotChangeDirectivesOutsideThem(t *testing.T) {
	body := "LOLLYWIZ_TEXTFILE_VERSION = 0.1.0\n#instructions_begin\n[##if a##]\nmkdir yes\n[##else##]\nmkdir no\n[##endif##]\n#instructions_end\n"

	parse := func(text string) []string {
		e := newEngine(newTemplateFS(t, text))
		e.SetDefinitions(conditional.NewDefinitions("a"))
		require.NoError(t, e.SetSource("/tpl"))
		require.NoError(t, e.Parse())
		var out []string
		for _, inst := range e.Document().Instructions {
			out = append(out, inst.String())
		}
		return out
	}

	plain := parse(body)
	commented := parse("/* [##if a##] mkdir hidden [##endif##] */\n" + body + "/* trailing */")
	assert.Equal(t, []string{"mkdir yes"}, plain)
	assert.Equal(t, plain, commented)
}
