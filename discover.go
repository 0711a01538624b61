package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// discoverFiles expands paths into a sorted list of files to lint. Files given
// explicitly are taken regardless of their extension, excluded names are only
// applied while walking directories.
func discoverFiles(paths []string, exts *knownExtensions, excludes *knownExcludes) ([]string, error) {
	var res []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			res = append(res, filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && excludes.excluded(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Type().IsRegular() && exts.matches(path) {
				res = append(res, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	slices.Sort(res)
	return slices.Compact(res), nil
}
