package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrResolve indicates the current branch could not be determined.
	ErrResolve = errors.New("cannot resolve current branch")

	// ErrInvalidOptions indicates malformed ResolveOptions, detected before
	// any process is started.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrGitNotFound indicates git is not installed or not in PATH
	ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")
)

// ResolveError describes a git invocation that did not produce a branch name.
// ExitCode is -1 when the process could not be started.
type ResolveError struct {
	Path     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ResolveError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %s", ErrResolve, e.Path, strings.Join(e.Args, " "))
	switch {
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	case e.Stderr != "":
		fmt.Fprintf(&b, ": %s", e.Stderr)
	default:
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	}
	return b.String()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrResolve
func (e *ResolveError) Is(target error) bool {
	return target == ErrResolve
}
