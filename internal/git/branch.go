package git

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/raphi011/git-branch-is/internal/cmd"
)

// ResolveOptions controls how git is invoked to read the current branch.
// The zero value runs "git" in the current directory.
type ResolveOptions struct {
	// Dir is the working directory for git. Empty means the process cwd.
	Dir string
	// GitDir is passed as --git-dir. Relative paths resolve against Dir.
	GitDir string
	// GitArgs are extra arguments placed before the subcommand, after GitDir.
	GitArgs []string
	// GitPath is the git binary name or path. Empty means DefaultPath.
	GitPath string
}

// Validate reports malformed options without starting a process.
func (o ResolveOptions) Validate() error {
	if o.GitPath != "" && strings.TrimSpace(o.GitPath) == "" {
		return fmt.Errorf("%w: git path is blank", ErrInvalidOptions)
	}
	for _, s := range append([]string{o.Dir, o.GitDir, o.GitPath}, o.GitArgs...) {
		if strings.IndexByte(s, 0) >= 0 {
			return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidOptions, s)
		}
	}
	return nil
}

func (o ResolveOptions) path() string {
	if o.GitPath == "" {
		return DefaultPath
	}
	return o.GitPath
}

// CurrentBranch returns the short name of the branch HEAD points at, or ""
// when HEAD is detached.
//
// It runs "symbolic-ref --quiet --short HEAD". git exits with status 1 and
// prints nothing when HEAD is not a symbolic ref; that exact combination is
// read as detached. This relies on observed git behaviour rather than a
// documented contract, so anything else non-zero is a *ResolveError.
func CurrentBranch(ctx context.Context, opts ResolveOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	args := gitArgs(opts, "symbolic-ref", "--quiet", "--short", "HEAD")
	res, err := cmd.CaptureContext(ctx, opts.Dir, opts.path(), args...)
	if err != nil {
		return "", &ResolveError{Path: opts.path(), Args: args, ExitCode: -1, Err: err}
	}

	switch {
	case res.ExitCode == 0:
		return strings.TrimRightFunc(string(res.Stdout), unicode.IsSpace), nil
	case res.ExitCode == 1 && len(res.Stdout) == 0 && len(res.Stderr) == 0:
		return "", nil
	default:
		return "", &ResolveError{
			Path:     opts.path(),
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   string(bytes.TrimSpace(res.Stderr)),
		}
	}
}

// LocalBranches returns the short names of all local branches, sorted.
func LocalBranches(ctx context.Context, opts ResolveOptions) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	args := gitArgs(opts, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	output, err := cmd.OutputContext(ctx, opts.Dir, opts.path(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var branches []string
	for _, line := range strings.Split(string(output), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			branches = append(branches, name)
		}
	}
	sort.Strings(branches)
	return branches, nil
}
