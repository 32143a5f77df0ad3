// convert/discovery_test.go

package convert

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll(%q) failed: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile(%q) failed: %v", path, err)
	}
}

func TestFindPNGFilesRecursive(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "top.png"))
	writeFile(t, filepath.Join(root, "a", "b", "nested.png"))
	writeFile(t, filepath.Join(root, "a", "UPPER.PNG"))
	writeFile(t, filepath.Join(root, "a", "notes.txt"))
	writeFile(t, filepath.Join(root, "image.jpeg"))

	files := FindPNGFiles(root)

	want := []string{
		filepath.Join(root, "a", "UPPER.PNG"),
		filepath.Join(root, "a", "b", "nested.png"),
		filepath.Join(root, "top.png"),
	}
	sort.Strings(want)

	if len(files) != len(want) {
		t.Fatalf("FindPNGFiles() returned %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFindPNGFilesIsSorted(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "z.png"))
	writeFile(t, filepath.Join(root, "a.png"))
	writeFile(t, filepath.Join(root, "m", "k.png"))

	files := FindPNGFiles(root)
	if !sort.StringsAreSorted(files) {
		t.Errorf("FindPNGFiles() result is not sorted: %v", files)
	}
}

func TestFindPNGFilesNoDuplicates(t *testing.T) {
	root := t.TempDir()

	// The case-insensitive match must hit each file exactly once even on a
	// case-insensitive filesystem where *.png and *.PNG globs would overlap.
	writeFile(t, filepath.Join(root, "lower.png"))
	writeFile(t, filepath.Join(root, "upper.PNG"))

	files := FindPNGFiles(root)
	seen := make(map[string]bool)
	for _, f := range files {
		if seen[f] {
			t.Errorf("duplicate entry %q in %v", f, files)
		}
		seen[f] = true
	}
	if len(files) != 2 {
		t.Errorf("FindPNGFiles() returned %d files, want 2: %v", len(files), files)
	}
}

func TestFindPNGFilesFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevated privileges on windows")
	}

	root := t.TempDir()
	outside := t.TempDir()

	writeFile(t, filepath.Join(root, "real.png"))
	writeFile(t, filepath.Join(outside, "target.png"))

	linked := filepath.Join(root, "linked.png")
	if err := os.Symlink(filepath.Join(outside, "target.png"), linked); err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	broken := filepath.Join(root, "broken.png")
	if err := os.Symlink(filepath.Join(outside, "gone.png"), broken); err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	files := FindPNGFiles(root)

	want := []string{linked, filepath.Join(root, "real.png")}
	sort.Strings(want)
	if len(files) != len(want) {
		t.Fatalf("FindPNGFiles() returned %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFindPNGFilesInvalidRoot(t *testing.T) {
	t.Run("nonexistent directory", func(t *testing.T) {
		files := FindPNGFiles(filepath.Join(t.TempDir(), "does-not-exist"))
		if len(files) != 0 {
			t.Errorf("FindPNGFiles() = %v, want empty", files)
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.png")
		writeFile(t, path)
		files := FindPNGFiles(path)
		if len(files) != 0 {
			t.Errorf("FindPNGFiles() = %v, want empty", files)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		files := FindPNGFiles(t.TempDir())
		if len(files) != 0 {
			t.Errorf("FindPNGFiles() = %v, want empty", files)
		}
	})
}
