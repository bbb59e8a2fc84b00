package util

import (
	"io/fs"
	"path/filepath"

	"golang.org/x/exp/constraints"
)

// GatherFiles walks root and returns every file whose base name matches
// the glob pattern, e.g. "*.mid" or "rendered_*.png".
func GatherFiles(root, pattern string) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if ok {
			res = append(res, s)
		}
		return nil
	}
	filepath.WalkDir(root, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
