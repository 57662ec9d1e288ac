package suggest

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/git-branch-is/internal/git"
)

func TestClosest(t *testing.T) {
	t.Parallel()

	branches := []string{"main", "feature/login", "feature/logout", "release/1.0"}

	tests := []struct {
		name    string
		input   string
		exclude string
		want    string
		wantOK  bool
	}{
		{"case difference", "MAIN", "", "main", true},
		{"abbreviation", "ftlogin", "", "feature/login", true},
		{"excluded current", "main", "main", "", false},
		{"exact name skipped", "release/1.0", "", "", false},
		{"no match", "zzz", "", "", false},
		{"empty input", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Closest(tt.input, branches, tt.exclude)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Closest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBranch(t *testing.T) {
	t.Parallel()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{
		{"init", "-q"},
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"commit", "-q", "--allow-empty", "-m", "Initial commit"},
		{"branch", "-m", "main"},
		{"branch", "develop"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}

	got, ok, err := Branch(context.Background(), git.ResolveOptions{Dir: dir}, "dvlp", "main")
	if err != nil {
		t.Fatalf("Branch() error = %v", err)
	}
	if !ok || got != "develop" {
		t.Errorf("Branch() = %q, %v; want %q, true", got, ok, "develop")
	}
}
