package main

import (
	"errors"
	"strconv"

	"github.com/raphi011/git-branch-is/internal/git"
	"github.com/raphi011/git-branch-is/internal/match"
)

// Exit codes. Each failure category keeps its own code so scripts can tell
// "wrong branch" apart from "could not tell".
const (
	exitMatch    = 0
	exitMismatch = 1
	exitUsage    = 2 // invalid pattern, options or arguments
	exitResolve  = 3 // git failed to report the current branch
)

// exitError carries an exit code for an outcome that has already been reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "exit status " + strconv.Itoa(e.code)
}

// exitCodeFor classifies a check error.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitMatch
	case errors.Is(err, match.ErrInvalidPattern),
		errors.Is(err, match.ErrInvalidRequest),
		errors.Is(err, git.ErrInvalidOptions):
		return exitUsage
	default:
		return exitResolve
	}
}
