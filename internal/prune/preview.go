package prune

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Listing returns every path below the tree root, slash separated and
// sorted. Directories carry a trailing slash.
func Listing(fsys billy.Filesystem) ([]string, error) {
	var out []string
	err := util.Walk(fsys, ".", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		rel := filepath.ToSlash(p)
		if info.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// Simulate returns the listing that applying ops would leave behind.
// Ops whose path is absent are skipped.
func Simulate(listing []string, ops []Op) []string {
	set := make(map[string]struct{}, len(listing))
	for _, p := range listing {
		set[p] = struct{}{}
	}
	for _, op := range ops {
		switch op.Action {
		case ActionRemoveFile:
			delete(set, op.Path)
		case ActionRemoveDir:
			prefix := strings.TrimSuffix(op.Path, "/") + "/"
			for p := range set {
				if strings.HasPrefix(p, prefix) {
					delete(set, p)
				}
			}
		case ActionMove:
			if _, ok := set[op.Path]; ok {
				delete(set, op.Path)
				set[op.Target] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Preview returns a unified diff between the current listing of the tree
// and the listing after ops. The tree is not modified.
func (p *Pruner) Preview(ops []Op) (string, error) {
	before, err := Listing(p.fs)
	if err != nil {
		return "", err
	}
	after := Simulate(before, ops)
	return udiff.Unified("tree", "tree (pruned)", joinLines(before), joinLines(after)), nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
