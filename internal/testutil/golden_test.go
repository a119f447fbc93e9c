package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAssertGoldenMatches(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "testdata"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "testdata", "out.golden"), []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	AssertGolden(t, dir, "out.golden", "hello\n")
}

func TestAssertGoldenUpdate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPDATE_GOLDEN", "1")
	AssertGolden(t, dir, "fresh.golden", "new output")
	data, err := os.ReadFile(filepath.Join(dir, "testdata", "fresh.golden"))
	if err != nil {
		t.Fatalf("expected golden to be written: %v", err)
	}
	if string(data) != "new output" {
		t.Fatalf("unexpected golden content %q", data)
	}
}

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}
