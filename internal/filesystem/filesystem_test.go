package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteListReadAndVerify(t *testing.T) {
	deployDir := t.TempDir()

	path, hash, err := WriteList(deployDir, "jj2-2004-preview", "hello world", false)
	if err != nil {
		t.Fatalf("WriteList returned error: %v", err)
	}

	if want := filepath.Join(deployDir, "jj2-2004-preview.conf"); path != want {
		t.Fatalf("expected path %s, got %s", want, path)
	}

	content, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if content != "hello world" {
		t.Fatalf("expected content 'hello world', got %q", content)
	}

	ok, err := VerifyFile(path, hash)
	if err != nil {
		t.Fatalf("VerifyFile error: %v", err)
	}
	if !ok {
		t.Fatalf("VerifyFile expected true")
	}

	ok, err = VerifyFile(path, "deadbeef")
	if err != nil {
		t.Fatalf("VerifyFile error: %v", err)
	}
	if ok {
		t.Fatalf("VerifyFile expected false for wrong hash")
	}
}

func TestWriteListArchived(t *testing.T) {
	deployDir := t.TempDir()

	path, _, err := WriteList(deployDir, "jj2-2003-p1", "content", true)
	if err != nil {
		t.Fatalf("WriteList returned error: %v", err)
	}

	if want := filepath.Join(deployDir, ArchiveDir, "jj2-2003-p1.conf"); path != want {
		t.Fatalf("expected path %s, got %s", want, path)
	}
	if !FileExists(path) {
		t.Fatalf("expected archived file to exist")
	}
}

func TestWriteListOverwrites(t *testing.T) {
	deployDir := t.TempDir()

	if _, _, err := WriteList(deployDir, "jj2-2002-p0", "first", false); err != nil {
		t.Fatalf("first WriteList error: %v", err)
	}
	path, _, err := WriteList(deployDir, "jj2-2002-p0", "second", false)
	if err != nil {
		t.Fatalf("second WriteList error: %v", err)
	}

	content, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if content != "second" {
		t.Fatalf("expected overwritten content, got %q", content)
	}
}

func TestVerifyFileMissing(t *testing.T) {
	ok, err := VerifyFile(filepath.Join(t.TempDir(), "missing.conf"), "hash")
	if err != nil {
		t.Fatalf("VerifyFile error: %v", err)
	}
	if ok {
		t.Fatalf("expected missing file to fail verification")
	}
}

func TestCleanDeployment(t *testing.T) {
	deployDir := t.TempDir()

	for _, name := range []string{"jj2-2002-p0", "jj2-2004-preview"} {
		if _, _, err := WriteList(deployDir, name, "x", false); err != nil {
			t.Fatalf("WriteList error: %v", err)
		}
	}
	if _, _, err := WriteList(deployDir, "jj2-2003-p1", "x", true); err != nil {
		t.Fatalf("WriteList error: %v", err)
	}

	readme := filepath.Join(deployDir, "README.md")
	if err := os.WriteFile(readme, []byte("keep"), 0o600); err != nil {
		t.Fatalf("write readme: %v", err)
	}

	removed, err := CleanDeployment(deployDir)
	if err != nil {
		t.Fatalf("CleanDeployment error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed files, got %d", removed)
	}

	if !FileExists(readme) {
		t.Fatalf("non-list files should be kept")
	}
	if FileExists(ListPath(deployDir, "jj2-2003-p1", true)) {
		t.Fatalf("archived list should be removed")
	}
}

func TestCleanDeploymentMissingDir(t *testing.T) {
	removed, err := CleanDeployment(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("CleanDeployment error: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected nothing removed, got %d", removed)
	}
}
