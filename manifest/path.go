package manifest

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"
)

// searchPath returns dir followed by each directory of path, as a list
// string. Entries that are not existing directories are dropped.
func searchPath(dir string, path ...string) string {
	return mung.Make(
		mung.WithSubjectItems(path...),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dir),
		mung.WithFilter(isDir),
	).String()
}

// locate returns the absolute path of the first file named name found in dir
// or a directory of path. Absolute names are only checked for existence.
func locate(name, dir string, path ...string) (string, bool) {
	if filepath.IsAbs(name) {
		return name, isFile(name)
	}

	seen := map[string]bool{}

	for _, d := range filepath.SplitList(searchPath(dir, path...)) {
		abs, err := filepath.Abs(d)
		if err != nil || seen[abs] {
			continue
		}

		seen[abs] = true

		if f := filepath.Join(abs, name); isFile(f) {
			return f, true
		}
	}

	return "", false
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
