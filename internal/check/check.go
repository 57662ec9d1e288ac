// Package check ties branch resolution and matching together.
package check

import (
	"context"

	"github.com/raphi011/git-branch-is/internal/git"
	"github.com/raphi011/git-branch-is/internal/match"
)

// Check resolves the current branch with opts and matches it against req.
//
// Malformed options, contradictory requests and patterns that do not compile
// are reported before git is started. Errors keep their kind:
// git.ErrInvalidOptions / match.ErrInvalidRequest, match.ErrInvalidPattern,
// and git.ErrResolve.
func Check(ctx context.Context, req match.Request, opts git.ResolveOptions) (match.Result, error) {
	if err := opts.Validate(); err != nil {
		return match.Result{}, err
	}
	req, err := req.Compiled()
	if err != nil {
		return match.Result{}, err
	}

	branch, err := git.CurrentBranch(ctx, opts)
	if err != nil {
		return match.Result{}, err
	}
	return match.Match(branch, req)
}

// Is reports whether the current branch is exactly expected.
func Is(ctx context.Context, expected string, opts git.ResolveOptions) (bool, error) {
	res, err := Check(ctx, match.Request{Expected: expected}, opts)
	return res.Matched, err
}
