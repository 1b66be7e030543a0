package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")

	require.NoError(t, fsys.WriteFile(testFile, []byte("hello world"), 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())

	data, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test.txt", entries[0].Name())
}

func TestReadFileOnDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/d", 0755))
	_, err := fsys.ReadFile("/d")
	assert.Error(t, err)
}

func TestMemorySymlinkUnsupported(t *testing.T) {
	fsys := NewMemory()
	err := fsys.Symlink("/a", "/b")
	assert.Error(t, err)
}

func TestTypeOf(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/root/dir", 0755))
	require.NoError(t, fsys.WriteFile("/root/file", []byte("x"), 0644))

	assert.Equal(t, Dir, TypeOf(fsys, "/root/dir"))
	assert.Equal(t, File, TypeOf(fsys, "/root/file"))
	assert.Equal(t, None, TypeOf(fsys, "/root/missing"))
	assert.True(t, Exists(fsys, "/root/file"))
	assert.False(t, Exists(fsys, "/root/missing"))
}

func TestTypeOfLinks(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	toFile := filepath.Join(dir, "to-file")
	toDir := filepath.Join(dir, "to-dir")
	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, fsys.Symlink(file, toFile))
	require.NoError(t, fsys.Symlink(dir, toDir))
	require.NoError(t, fsys.Symlink(filepath.Join(dir, "gone"), dangling))

	assert.Equal(t, File, TypeOf(fsys, toFile))
	assert.Equal(t, Dir, TypeOf(fsys, toDir))
	assert.Equal(t, Symlink, TypeOf(fsys, dangling))
	assert.True(t, Exists(fsys, dangling))
}

func TestCopyFile(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/run.sh", []byte("#!/bin/sh"), 0755))

	require.NoError(t, CopyFile(fsys, "/src/run.sh", "/dst/deep/run.sh"))

	data, err := fsys.ReadFile("/dst/deep/run.sh")
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh", string(data))

	info, err := fsys.Stat("/dst/deep/run.sh")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCopyFileMissingSource(t *testing.T) {
	fsys := NewMemory()
	assert.Error(t, CopyFile(fsys, "/nope", "/dst"))
	assert.False(t, Exists(fsys, "/dst"))
}

func TestCopyTree(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/src/sub", 0755))
	require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("a"), 0644))
	require.NoError(t, fsys.WriteFile("/src/sub/b.txt", []byte("b"), 0644))
	require.NoError(t, fsys.MkdirAll("/src/empty", 0755))

	require.NoError(t, CopyTree(fsys, "/src", "/out/copy"))

	for path, want := range map[string]string{"/out/copy/a.txt": "a", "/out/copy/sub/b.txt": "b"} {
		data, err := fsys.ReadFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, string(data))
	}
	assert.Equal(t, Dir, TypeOf(fsys, "/out/copy/empty"))
}

func TestCopyTreeNotADirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("/f", []byte("x"), 0644))
	assert.Error(t, CopyTree(fsys, "/f", "/out"))
}

func TestCopyTreeLinks(t *testing.T) {
	fsys := NewOS()
	root := t.TempDir()
	src := filepath.Join(root, "src")
	other := filepath.Join(root, "other")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.MkdirAll(other, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(other, "target.txt"), []byte("t"), 0644))

	require.NoError(t, os.Symlink(filepath.Join(other, "target.txt"), filepath.Join(src, "link.txt")))
	require.NoError(t, os.Symlink(other, filepath.Join(src, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(src, "dangling")))

	dst := filepath.Join(root, "dst")
	require.NoError(t, CopyTree(fsys, src, dst))

	info, err := os.Lstat(filepath.Join(dst, "link.txt"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "file links are copied as files")

	assert.Equal(t, None, TypeOf(fsys, filepath.Join(dst, "linkdir")))
	assert.Equal(t, None, TypeOf(fsys, filepath.Join(dst, "dangling")))
}

func TestItemTypeString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "dir", Dir.String())
	assert.Equal(t, "symlink", Symlink.String())
	assert.Equal(t, "other", Other.String())
}
