package scaffold

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
)

type walkFunc func(path string, info fs.FileInfo, err error) error

// walk visits every entry below root of a billy filesystem depth-first,
// directories before their contents, entries in lexical order. The root
// itself is not visited; memfs synthesizes directories and cannot stat it.
func walk(bfs billy.Filesystem, root string, fn walkFunc) error {
	entries, err := bfs.ReadDir(root)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if err := fn(path, entry, nil); err != nil {
			return err
		}
		if entry.IsDir() {
			if err := walk(bfs, path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
