// Package git inspects the repository the lflists are deployed into.
package git

import (
	"os/exec"
	"strings"
)

// RepoStatus describes the working tree of a deployment directory.
type RepoStatus struct {
	IsGitRepo bool
	Root      string
	Branch    string
	// Changed lists paths under the inspected directory that differ from
	// HEAD, untracked files included, relative to Root.
	Changed []string
}

// GetRepoStatus inspects dir. A directory outside any git repository yields
// IsGitRepo=false rather than an error.
func GetRepoStatus(dir string) (*RepoStatus, error) {
	root, err := runGitCommand(dir, "rev-parse", "--show-toplevel")
	if err != nil || root == "" {
		//nolint:nilerr // Intentionally return non-repo status instead of error
		return &RepoStatus{IsGitRepo: false}, nil
	}

	branch, err := runGitCommand(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		// A repository without commits has no HEAD to resolve yet.
		branch = ""
	}

	output, err := runGitCommand(dir, "status", "--porcelain", "--untracked-files=all", "--", ".")
	if err != nil {
		return nil, err
	}

	return &RepoStatus{
		IsGitRepo: true,
		Root:      strings.TrimSpace(root),
		Branch:    strings.TrimSpace(branch),
		Changed:   parsePorcelain(output),
	}, nil
}

// parsePorcelain extracts paths from `git status --porcelain` output. Renames
// report their new path.
func parsePorcelain(output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+len(" -> "):]
		}
		paths = append(paths, strings.Trim(path, `"`))
	}
	return paths
}

// runGitCommand executes a git command and returns its output without the
// trailing newline. Leading whitespace is significant for porcelain output.
func runGitCommand(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	// Suppress stderr to avoid noise when not in a git repository
	cmd.Stderr = nil

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(output), "\n"), nil
}
