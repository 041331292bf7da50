package files

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Collect enumerates all regular files under root, in lexical order, keeping
// those for which keep returns true. Traversal-level failures (unreadable
// directories, broken entries) are recorded as "path: message" problem
// strings and never abort the walk of remaining entries.
func Collect(root string, keep func(path string) bool) (paths []string, problems []string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logrus.Warnf("Skipping '%s': %v", path, err)
			problems = append(problems, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if keep(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		// WalkDir only returns an error from the callback; ours never does.
		problems = append(problems, fmt.Sprintf("%s: %v", root, err))
	}
	return paths, problems
}
