package prune

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/uvi-dev/uvi/internal/errdef"
)

// openTree returns a filesystem bound to root. The root must be an existing
// directory.
func openTree(root string) (billy.Filesystem, error) {
	abs, err := filepath.Abs(strings.TrimSpace(root))
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "resolve %s", root)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "open tree %s", root)
	}
	if !info.IsDir() {
		return nil, errdef.New(errdef.CodeFilesystem, "tree root %s is not a directory", root)
	}
	return osfs.New(abs, osfs.WithBoundOS()), nil
}

// cleanRel rejects paths that would leave the tree root.
func cleanRel(rel string) (string, error) {
	rel = path.Clean(filepath.ToSlash(strings.TrimSpace(rel)))
	if rel == "" || rel == "." || rel == ".." {
		return "", fmt.Errorf("invalid tree path %q", rel)
	}
	if path.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", fmt.Errorf("invalid tree path %q", rel)
	}
	if strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("invalid tree path %q", rel)
	}
	return rel, nil
}

func execOp(fsys billy.Filesystem, op Op) error {
	p, err := cleanRel(op.Path)
	if err != nil {
		return err
	}
	switch op.Action {
	case ActionRemoveFile:
		return removeFile(fsys, p)
	case ActionRemoveDir:
		return removeDir(fsys, p)
	case ActionMove:
		target, err := cleanRel(op.Target)
		if err != nil {
			return err
		}
		return moveFile(fsys, p, target)
	default:
		return fmt.Errorf("unknown action %q", op.Action)
	}
}

func removeFile(fsys billy.Filesystem, p string) error {
	info, err := fsys.Lstat(p)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ErrIsDir
	}
	return fsys.Remove(p)
}

// removeDir fails on a missing path, unlike util.RemoveAll.
func removeDir(fsys billy.Filesystem, p string) error {
	info, err := fsys.Lstat(p)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrNotDir
	}
	return util.RemoveAll(fsys, p)
}

func moveFile(fsys billy.Filesystem, from, to string) error {
	if _, err := fsys.Lstat(from); err != nil {
		return err
	}
	return fsys.Rename(from, to)
}
