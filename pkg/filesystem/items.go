package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// ItemType classifies what a path refers to
type ItemType int

const (
	None ItemType = iota
	File
	Dir
	Symlink
	// Other is anything that exists but is neither of the above, a named
	// pipe or a device for instance
	Other
)

func (t ItemType) String() string {
	switch t {
	case None:
		return "none"
	case File:
		return "file"
	case Dir:
		return "dir"
	case Symlink:
		return "symlink"
	default:
		return "other"
	}
}

// TypeOf classifies path. Links are followed, so a link to a file is a File
// and a link to a directory a Dir; only a link whose target is missing is
// reported as Symlink.
func TypeOf(fsys FS, path string) ItemType {
	if info, err := fsys.Stat(path); err == nil {
		return typeOfMode(info.Mode())
	}
	if info, err := fsys.Lstat(path); err == nil {
		return typeOfMode(info.Mode())
	}
	return None
}

// Exists reports whether anything, even a dangling link, is at path
func Exists(fsys FS, path string) bool {
	return TypeOf(fsys, path) != None
}

func typeOfMode(m fs.FileMode) ItemType {
	switch {
	case m.IsRegular():
		return File
	case m.IsDir():
		return Dir
	case m&fs.ModeSymlink != 0:
		return Symlink
	default:
		return Other
	}
}

// CopyFile copies the content and permission bits of src to dst, creating
// dst's parent directories as needed
func CopyFile(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return fsys.WriteFile(dst, data, info.Mode().Perm())
}

// CopyTree copies the directory src to dst recursively. Links to files are
// copied as regular files holding the target's content; links to
// directories and dangling links are skipped.
func CopyTree(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("copy tree %s: not a directory", src)
	}
	if err := fsys.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())

		linked := false
		if li, err := fsys.Lstat(from); err == nil && li.Mode()&fs.ModeSymlink != 0 {
			linked = true
		}

		switch TypeOf(fsys, from) {
		case Dir:
			if linked {
				continue
			}
			if err := CopyTree(fsys, from, to); err != nil {
				return err
			}
		case File:
			if err := CopyFile(fsys, from, to); err != nil {
				return err
			}
		}
	}
	return nil
}
