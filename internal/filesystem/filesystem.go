// Package filesystem writes rendered lflist files into the deployment
// directory.
package filesystem

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveDir is the subdirectory that holds retired lists.
const ArchiveDir = "archive"

const confExt = ".conf"

// ListPath returns where a list named name is written.
func ListPath(deployDir, name string, archived bool) string {
	dir := deployDir
	if archived {
		dir = filepath.Join(deployDir, ArchiveDir)
	}
	return filepath.Join(dir, name+confExt)
}

// WriteList writes content to the list's path, creating directories as
// needed, and returns the path and the SHA-256 of content.
func WriteList(deployDir, name, content string, archived bool) (string, string, error) {
	path := ListPath(deployDir, name, archived)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", "", err
	}

	hash := calculateHash(content)

	//nolint:gosec // G306: lflists are read by the game client
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", "", err
	}

	return path, hash, nil
}

// ReadFile reads a file from disk and returns its contents as a string.
func ReadFile(path string) (string, error) {
	//nolint:gosec // G304: path is built from the configured deploy directory
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// FileExists reports whether the given path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// VerifyFile ensures the file exists and its SHA-256 hash matches the expected hash.
func VerifyFile(path, expectedHash string) (bool, error) {
	if !FileExists(path) {
		return false, nil
	}

	content, err := ReadFile(path)
	if err != nil {
		return false, err
	}

	actualHash := calculateHash(content)
	return actualHash == expectedHash, nil
}

// CleanDeployment removes every .conf file under dir, at any depth, and
// returns how many were removed. A missing dir is not an error.
func CleanDeployment(dir string) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), confExt) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func calculateHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
