// Package suggest finds the local branch a mistyped name most likely meant.
package suggest

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/git-branch-is/internal/git"
)

// Closest returns the candidate closest to name, skipping exclude.
// A case-insensitive equal name wins; otherwise the best fuzzy match is used.
func Closest(name string, candidates []string, exclude string) (string, bool) {
	if name == "" {
		return "", false
	}

	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == exclude || c == name {
			continue
		}
		if strings.EqualFold(c, name) {
			return c, true
		}
		filtered = append(filtered, c)
	}

	matches := fuzzy.Find(name, filtered)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// Branch lists the local branches with opts and returns the one closest to
// name other than current.
func Branch(ctx context.Context, opts git.ResolveOptions, name, current string) (string, bool, error) {
	branches, err := git.LocalBranches(ctx, opts)
	if err != nil {
		return "", false, err
	}
	s, ok := Closest(name, branches, current)
	return s, ok, nil
}
