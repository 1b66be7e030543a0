// Package archive packs directory trees into compressed tarballs and
// unpacks them, reading and writing through a filesystem.FS.
package archive

import (
	"archive/tar"
	"bufio"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MaxUnpackSize caps the total bytes of file content Unpack will extract
var MaxUnpackSize int64 = 512 << 20

// Format is the compression wrapped around the tar stream
type Format int

const (
	Gzip Format = iota
	Zstd
)

func (f Format) String() string {
	if f == Zstd {
		return "tar.zst"
	}
	return "tar.gz"
}

// FormatFor picks the format from an archive file name
func FormatFor(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return Gzip, nil
	case strings.HasSuffix(lower, ".tar.zst"), strings.HasSuffix(lower, ".tzst"):
		return Zstd, nil
	}
	return 0, errors.Newf(errors.ErrArchive, "unsupported archive '%s': expected .tar.gz or .tar.zst", name)
}

// PackDir writes the tree under dir to w. Entry names are relative to dir
// and use forward slashes. Links to files are stored as regular files;
// links to directories and dangling links are left out.
func PackDir(fsys filesystem.FS, dir string, w io.Writer, format Format) error {
	logger := logging.GetLogger("archive")

	if filesystem.TypeOf(fsys, dir) != filesystem.Dir {
		return errors.Newf(errors.ErrArchive, "'%s' is not a directory", dir)
	}

	var compressed io.WriteCloser
	switch format {
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return errors.Wrap(err, errors.ErrArchive, "can't start zstd stream")
		}
		compressed = enc
	default:
		compressed = gzip.NewWriter(w)
	}

	tw := tar.NewWriter(compressed)
	count := 0
	if err := addDir(fsys, tw, dir, "", &count); err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "can't pack '%s'", dir)
	}
	if err := tw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchive, "can't finish tar stream")
	}
	if err := compressed.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "can't finish %s stream", format)
	}

	logger.Debug().Str("dir", dir).Str("format", format.String()).Int("entries", count).Msg("Directory packed")
	return nil
}

func addDir(fsys filesystem.FS, tw *tar.Writer, dir, prefix string, count *int) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		name := path.Join(prefix, e.Name())

		if li, err := fsys.Lstat(full); err == nil && li.Mode()&fs.ModeSymlink != 0 &&
			filesystem.TypeOf(fsys, full) != filesystem.File {
			continue
		}

		info, err := fsys.Stat(full)
		if err != nil {
			continue
		}
		switch {
		case info.IsDir():
			if err := writeHeader(tw, info, name+"/", tar.TypeDir, 0); err != nil {
				return err
			}
			*count++
			if err := addDir(fsys, tw, full, name, count); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			data, err := fsys.ReadFile(full)
			if err != nil {
				return err
			}
			if err := writeHeader(tw, info, name, tar.TypeReg, int64(len(data))); err != nil {
				return err
			}
			if _, err := tw.Write(data); err != nil {
				return err
			}
			*count++
		}
	}
	return nil
}

func writeHeader(tw *tar.Writer, info fs.FileInfo, name string, typ byte, size int64) error {
	return tw.WriteHeader(&tar.Header{
		Typeflag: typ,
		Name:     name,
		Mode:     int64(info.Mode().Perm()),
		Size:     size,
		ModTime:  info.ModTime(),
	})
}

// Unpack extracts an archive into dest. Entries that would land outside
// dest are rejected; entries other than files and directories are skipped.
func Unpack(r io.Reader, format Format, fsys filesystem.FS, dest string) error {
	logger := logging.GetLogger("archive")

	var stream io.Reader
	switch format {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return errors.Wrap(err, errors.ErrArchive, "can't open zstd stream")
		}
		defer dec.Close()
		stream = dec
	default:
		zr, err := gzip.NewReader(bufio.NewReader(r))
		if err != nil {
			return errors.Wrap(err, errors.ErrArchive, "can't open gzip stream")
		}
		defer zr.Close()
		stream = zr
	}

	if err := fsys.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "can't create '%s'", dest)
	}

	tr := tar.NewReader(stream)
	count := 0
	remaining := MaxUnpackSize
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrArchive, "corrupt archive")
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := fsys.MkdirAll(target, fs.FileMode(hdr.Mode).Perm()|0700); err != nil {
				return errors.Wrapf(err, errors.ErrArchive, "can't create '%s'", target)
			}
		case tar.TypeReg:
			if hdr.Size < 0 || hdr.Size > remaining {
				return errors.Newf(errors.ErrArchive,
					"archive entry '%s' exceeds the %d byte unpack limit", hdr.Name, MaxUnpackSize).
					WithDetail("entry", hdr.Name).
					WithDetail("size", hdr.Size)
			}
			remaining -= hdr.Size
			data, err := io.ReadAll(io.LimitReader(tr, hdr.Size))
			if err != nil {
				return errors.Wrapf(err, errors.ErrArchive, "can't read '%s' from archive", hdr.Name)
			}
			if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrArchive, "can't create '%s'", filepath.Dir(target))
			}
			if err := fsys.WriteFile(target, data, fs.FileMode(hdr.Mode).Perm()); err != nil {
				return errors.Wrapf(err, errors.ErrArchive, "can't write '%s'", target)
			}
		default:
			logger.Debug().Str("name", hdr.Name).Msg("Skipping archive entry that is not a file or directory")
			continue
		}
		count++
	}

	logger.Debug().Str("dest", dest).Str("format", format.String()).Int("entries", count).Msg("Archive unpacked")
	return nil
}

// safeJoin joins an archive entry name to dest, refusing names that escape
func safeJoin(dest, name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || hasDotDot(name) {
		return "", errors.Newf(errors.ErrArchive, "archive entry '%s' escapes the destination", name).
			WithDetail("entry", name)
	}
	clean := path.Clean("/" + strings.ReplaceAll(name, `\`, "/"))
	return filepath.Join(dest, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func hasDotDot(name string) bool {
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return true
		}
	}
	return false
}
