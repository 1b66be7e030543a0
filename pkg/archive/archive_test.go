package archive

import (
	"archive/tar"
	"bytes"
	"testing"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/tree/sub/empty", 0755))
	require.NoError(t, fsys.WriteFile("/tree/a.txt", []byte("alpha"), 0644))
	require.NoError(t, fsys.WriteFile("/tree/sub/run.sh", []byte("#!/bin/sh"), 0755))
	return fsys
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{Gzip, Zstd} {
		t.Run(format.String(), func(t *testing.T) {
			fsys := sampleTree(t)
			var buf bytes.Buffer
			require.NoError(t, PackDir(fsys, "/tree", &buf, format))

			require.NoError(t, Unpack(&buf, format, fsys, "/copy"))

			data, err := fsys.ReadFile("/copy/a.txt")
			require.NoError(t, err)
			assert.Equal(t, "alpha", string(data))

			info, err := fsys.Stat("/copy/sub/run.sh")
			require.NoError(t, err)
			assert.EqualValues(t, 0755, info.Mode().Perm())

			assert.Equal(t, filesystem.Dir, filesystem.TypeOf(fsys, "/copy/sub/empty"))
		})
	}
}

func TestPackDirNotADirectory(t *testing.T) {
	fsys := sampleTree(t)
	err := PackDir(fsys, "/tree/a.txt", &bytes.Buffer{}, Gzip)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArchive))
}

func TestUnpackRejectsTraversal(t *testing.T) {
	for _, name := range []string{"../evil", "a/../../evil", "/etc/passwd", `..\evil`} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			zw := gzip.NewWriter(&buf)
			tw := tar.NewWriter(zw)
			require.NoError(t, tw.WriteHeader(&tar.Header{Typeflag: tar.TypeReg, Name: name, Mode: 0644, Size: 1}))
			_, err := tw.Write([]byte("x"))
			require.NoError(t, err)
			require.NoError(t, tw.Close())
			require.NoError(t, zw.Close())

			fsys := filesystem.NewMemory()
			err = Unpack(&buf, Gzip, fsys, "/dest")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrArchive))
			assert.False(t, filesystem.Exists(fsys, "/evil"))
		})
	}
}

func gzipTar(t *testing.T, headers []*tar.Header, bodies []string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(zw)
	for i, hdr := range headers {
		require.NoError(t, tw.WriteHeader(hdr))
		_, err := tw.Write([]byte(bodies[i]))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, zw.Close())
	return &buf
}

func TestUnpackSizeLimit(t *testing.T) {
	saved := MaxUnpackSize
	MaxUnpackSize = 8
	defer func() { MaxUnpackSize = saved }()

	t.Run("single entry too large", func(t *testing.T) {
		buf := gzipTar(t,
			[]*tar.Header{{Typeflag: tar.TypeReg, Name: "big.txt", Mode: 0644, Size: 9}},
			[]string{"123456789"})

		fsys := filesystem.NewMemory()
		err := Unpack(buf, Gzip, fsys, "/dest")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrArchive))
		assert.Equal(t, "big.txt", errors.GetErrorDetails(err)["entry"])
		assert.False(t, filesystem.Exists(fsys, "/dest/big.txt"))
	})

	t.Run("total over limit", func(t *testing.T) {
		buf := gzipTar(t,
			[]*tar.Header{
				{Typeflag: tar.TypeReg, Name: "a.txt", Mode: 0644, Size: 5},
				{Typeflag: tar.TypeReg, Name: "b.txt", Mode: 0644, Size: 5},
			},
			[]string{"aaaaa", "bbbbb"})

		fsys := filesystem.NewMemory()
		err := Unpack(buf, Gzip, fsys, "/dest")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrArchive))
		assert.True(t, filesystem.Exists(fsys, "/dest/a.txt"))
		assert.False(t, filesystem.Exists(fsys, "/dest/b.txt"))
	})

	t.Run("within limit", func(t *testing.T) {
		buf := gzipTar(t,
			[]*tar.Header{{Typeflag: tar.TypeReg, Name: "ok.txt", Mode: 0644, Size: 8}},
			[]string{"12345678"})

		fsys := filesystem.NewMemory()
		require.NoError(t, Unpack(buf, Gzip, fsys, "/dest"))
		data, err := fsys.ReadFile("/dest/ok.txt")
		require.NoError(t, err)
		assert.Equal(t, "12345678", string(data))
	})
}

func TestUnpackCorrupt(t *testing.T) {
	err := Unpack(bytes.NewBufferString("not an archive"), Gzip, filesystem.NewMemory(), "/dest")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArchive))
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"out.tar.gz":  Gzip,
		"out.TGZ":     Gzip,
		"out.tar.zst": Zstd,
		"out.tzst":    Zstd,
	}
	for name, want := range tests {
		got, err := FormatFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatFor("out.zip")
	assert.True(t, errors.IsErrorCode(err, errors.ErrArchive))
}
