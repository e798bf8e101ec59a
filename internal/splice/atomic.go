package splice

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/chroot"
	"github.com/go-git/go-billy/v5/osfs"
)

// writeFileAtomic replaces path with data using a temp file in the same
// directory followed by a rename. If any step fails the original file is
// left unchanged and the temp file is removed.
func writeFileAtomic(fsys billy.Filesystem, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	pattern := "." + filepath.Base(path) + ".ngscaffold-"

	tmp, err := fsys.TempFile(dir, pattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Temp files are created 0600.
	if err := chmod(fsys, tmpPath, perm); err != nil {
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// chmod sets the mode of name on fsys. Filesystems that keep no modes are
// left alone.
func chmod(fsys billy.Filesystem, name string, perm os.FileMode) error {
	if ch, ok := fsys.(billy.Change); ok {
		return ch.Chmod(name, perm)
	}
	if p, ok := osPath(fsys, name); ok {
		return os.Chmod(p, perm)
	}
	return nil
}

// osPath maps name on fsys to its path on the OS filesystem, when fsys is
// an osfs filesystem.
func osPath(fsys billy.Filesystem, name string) (string, bool) {
	var root string
	switch f := fsys.(type) {
	case *osfs.BoundOS:
		root = f.Root()
	case *chroot.ChrootHelper:
		if _, ok := f.Underlying().(*osfs.ChrootOS); !ok {
			return "", false
		}
		root = f.Root()
	default:
		return "", false
	}
	if filepath.IsAbs(name) {
		return name, true
	}
	return filepath.Join(root, name), true
}
