// Package corpus reads named byte resources from a filesystem tree: the
// "byte-reader" collaborator the core treats as external, generalized from
// the original harness's hard-coded file list to an arbitrary directory.
package corpus

import (
	"os"
	"path/filepath"
	"sort"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "corpus: " + string(e) }

// File is one corpus entry: its path relative to the corpus root and its
// full contents.
type File struct {
	Name string
	Data []byte
}

// List walks dir and returns every regular file found, sorted by path, read
// fully into memory. Subdirectories are descended into; dotfiles are
// skipped.
func List(dir string) ([]File, error) {
	var names []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Base(path)[0] == '.' {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(dir, name)
		if err != nil {
			rel = name
		}
		files = append(files, File{Name: rel, Data: data})
	}
	return files, nil
}
