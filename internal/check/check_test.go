package check

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/git-branch-is/internal/git"
	"github.com/raphi011/git-branch-is/internal/match"
)

// setupTestRepo creates a repo whose HEAD is on branch with one commit.
func setupTestRepo(t *testing.T, branch string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	for _, args := range [][]string{
		{"init", "-q"},
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"commit", "-q", "--allow-empty", "-m", "Initial commit"},
		{"branch", "-m", branch},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	return dir
}

func TestCheck(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, "main")
	opts := git.ResolveOptions{Dir: repo}
	ctx := context.Background()

	tests := []struct {
		name string
		req  match.Request
		want bool
	}{
		{"same name", match.Request{Expected: "main"}, true},
		{"other name", match.Request{Expected: "dev"}, false},
		{"other name inverted", match.Request{Expected: "dev", Invert: true}, true},
		{"upper case ignored", match.Request{Expected: "MAIN", IgnoreCase: true}, true},
		{"regex", match.Request{Expected: "^ma", UseRegex: true}, true},
		{"func", match.Request{Func: func(b string) (bool, error) { return len(b) == 4, nil }}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Check(ctx, tt.req, opts)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if got.Matched != tt.want {
				t.Errorf("Check().Matched = %v, want %v", got.Matched, tt.want)
			}
			if got.Branch != "main" {
				t.Errorf("Check().Branch = %q, want %q", got.Branch, "main")
			}
		})
	}
}

func TestCheck_ErrorKinds(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, "main")
	outside := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     match.Request
		opts    git.ResolveOptions
		wantErr error
	}{
		{"invalid pattern", match.Request{Expected: "b[ad", UseRegex: true}, git.ResolveOptions{Dir: repo}, match.ErrInvalidPattern},
		{"invalid request", match.Request{Func: func(string) (bool, error) { return true, nil }, UseRegex: true}, git.ResolveOptions{Dir: repo}, match.ErrInvalidRequest},
		{"invalid options", match.Request{Expected: "main"}, git.ResolveOptions{Dir: repo, GitPath: " "}, git.ErrInvalidOptions},
		{"missing dir", match.Request{Expected: "main"}, git.ResolveOptions{Dir: filepath.Join(repo, "invalid")}, git.ErrResolve},
		{"not a repository", match.Request{Expected: "main"}, git.ResolveOptions{Dir: outside}, git.ErrResolve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Check(ctx, tt.req, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// A bad pattern must be reported even when git itself would fail.
func TestCheck_PatternCheckedBeforeResolve(t *testing.T) {
	t.Parallel()

	_, err := Check(context.Background(),
		match.Request{Expected: "b[ad", UseRegex: true},
		git.ResolveOptions{Dir: filepath.Join(os.TempDir(), "does-not-exist-xyz")})
	if !errors.Is(err, match.ErrInvalidPattern) {
		t.Errorf("Check() error = %v, want ErrInvalidPattern", err)
	}
	if errors.Is(err, git.ErrResolve) {
		t.Error("Check() spawned git before validating the pattern")
	}
}

func TestCheck_Detached(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, "main")
	cmd := exec.Command("git", "checkout", "-q", "--detach")
	cmd.Dir = repo
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("detach failed: %v\n%s", err, out)
	}

	got, err := Check(context.Background(), match.Request{Expected: "main"}, git.ResolveOptions{Dir: repo})
	if err != nil {
		t.Fatalf("Check() on detached HEAD error = %v", err)
	}
	if got.Matched || got.Branch != "" {
		t.Errorf("Check() on detached HEAD = %+v, want no match on empty branch", got)
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, "test-branch")
	ctx := context.Background()

	if ok, err := Is(ctx, "test-branch", git.ResolveOptions{Dir: repo}); err != nil || !ok {
		t.Errorf("Is(test-branch) = %v, %v; want true, nil", ok, err)
	}
	if ok, err := Is(ctx, "same-commit", git.ResolveOptions{Dir: repo}); err != nil || ok {
		t.Errorf("Is(same-commit) = %v, %v; want false, nil", ok, err)
	}
}
