// convert/discovery.go

package convert

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PNGExtension is the extension matched during source file discovery.
const PNGExtension = ".png"

// FindPNGFiles recursively finds all PNG files beneath root.
//
// A missing or non-directory root yields an empty list, not an error. The
// extension match is case-insensitive (".png" and ".PNG" hit the same branch),
// so a case-insensitive filesystem cannot produce duplicates. Symlinks whose
// names match are followed and included when they resolve to regular files.
// The result is sorted lexicographically by full path so that discovery and
// the later batch order are reproducible across runs.
func FindPNGFiles(root string) []string {
	var files []string

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return files
	}

	filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, never fatal
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), PNGExtension) {
			return nil
		}
		// Stat follows symlinks, so a link to a PNG counts while a
		// broken link or a link to a directory does not.
		target, statErr := os.Stat(path)
		if statErr != nil || !target.Mode().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})

	sort.Strings(files)
	return files
}
