package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

const testBranch = "test-branch"

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// runGitT runs git in dir and fails the test on error.
func runGitT(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a repo on testBranch with one commit, a second
// branch on the same commit and an empty "subdir".
func setupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")

	runGitT(t, "", "init", "-q", repoPath)
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"commit", "-q", "--allow-empty", "-m", "Initial commit"},
		{"branch", "-m", testBranch},
		{"branch", "same-commit"},
	} {
		runGitT(t, repoPath, args...)
	}

	if err := os.Mkdir(filepath.Join(repoPath, "subdir"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	return repoPath
}

// fakeGit writes an executable shell script standing in for git.
func fakeGit(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake git requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-git")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("failed to write fake git: %v", err)
	}
	return path
}
