// convert/pathmap.go

// Package convert implements the PNG to WebP conversion engine used by the
// WebPBatchConverter application: source file discovery, destination path
// mapping, the per-file codec call, and the batch worker that reports its
// progress back to the UI through a message mailbox.
package convert

import (
	"path/filepath"
	"strings"
)

// WebPExtension is the extension written to every destination file.
const WebPExtension = ".webp"

// TransformPath maps a discovered source file to its destination path,
// preserving the directory structure between sourceRoot and destRoot.
//
// Transforms: /src/a/b/image.png -> /dest/a/b/image.webp
//
// All three paths are normalized lexically (no filesystem access), so the
// function is deterministic and safe to call for files that no longer exist.
// If sourcePath does not lie under sourceRoot, only its filename is used and
// the file lands directly in destRoot.
func TransformPath(sourcePath, sourceRoot, destRoot string) string {
	sourcePath = absolutize(sourcePath)
	sourceRoot = absolutize(sourceRoot)
	destRoot = absolutize(destRoot)

	relPath, err := filepath.Rel(sourceRoot, sourcePath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		// Not under the source root, keep just the filename
		relPath = filepath.Base(sourcePath)
	}

	ext := filepath.Ext(relPath)
	relPath = strings.TrimSuffix(relPath, ext) + WebPExtension

	return filepath.Join(destRoot, relPath)
}

// absolutize cleans a path and makes it absolute without touching the
// filesystem. filepath.Abs only consults the working directory, which keeps
// TransformPath a pure path rewrite.
func absolutize(path string) string {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
