package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsEmptyString(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"value", false},
		{"  value  ", false},
	}

	for _, tc := range cases {
		if got := IsEmptyString(tc.input); got != tc.want {
			t.Errorf("IsEmptyString(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	if got := NormalizePath(""); got != "" {
		t.Errorf("NormalizePath(\"\") = %q, want empty", got)
	}
	if got := NormalizePath("   "); got != "" {
		t.Errorf("NormalizePath(whitespace) = %q, want empty", got)
	}

	got := NormalizePath("a/b/../c")
	want := filepath.Join("a", "c")
	if got != want {
		t.Errorf("NormalizePath(\"a/b/../c\") = %q, want %q", got, want)
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	if !DirectoryExists(dir) {
		t.Error("DirectoryExists returned false for an existing directory")
	}
	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Error("DirectoryExists returned true for a missing directory")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if DirectoryExists(file) {
		t.Error("DirectoryExists returned true for a regular file")
	}
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	if err := EnsureDirectoryExists(nested); err != nil {
		t.Fatalf("EnsureDirectoryExists: %v", err)
	}
	if !DirectoryExists(nested) {
		t.Error("nested directory was not created")
	}

	// Calling again on an existing directory must not fail
	if err := EnsureDirectoryExists(nested); err != nil {
		t.Errorf("EnsureDirectoryExists on existing directory: %v", err)
	}

	if err := EnsureDirectoryExists(""); err == nil {
		t.Error("EnsureDirectoryExists accepted an empty path")
	}
}

func TestIsDirWritable(t *testing.T) {
	dir := t.TempDir()

	if err := IsDirWritable(dir); err != nil {
		t.Errorf("IsDirWritable on temp dir: %v", err)
	}
	if err := IsDirWritable(filepath.Join(dir, "missing")); err == nil {
		t.Error("IsDirWritable accepted a missing directory")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if !FileExists(file) {
		t.Error("FileExists returned false for an existing file")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists returned true for a missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists returned true for a directory")
	}
}
