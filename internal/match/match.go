// Package match decides whether a branch name satisfies an expectation.
//
// An expectation is a literal name, a regular expression or a comparator
// function, with optional case folding and inversion. Matching is pure: the
// branch name comes from the caller.
package match

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidPattern indicates a regular expression that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidRequest indicates a Request whose fields contradict each other.
	ErrInvalidRequest = errors.New("invalid match request")
)

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrInvalidPattern
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// Func compares a branch name itself. An error aborts the match.
type Func func(branch string) (bool, error)

// Request describes what the current branch is expected to be.
type Request struct {
	// Expected is the literal name, or the pattern source when UseRegex is set.
	Expected string
	// Pattern is a precompiled expression; when set it is used instead of
	// compiling Expected. Requires UseRegex.
	Pattern *regexp.Regexp
	// Func replaces the built-in comparison entirely.
	Func Func

	IgnoreCase bool
	UseRegex   bool
	// Invert negates the outcome once. Being a bool, setting it again has no
	// further effect.
	Invert bool
}

// Result is the outcome of a match.
type Result struct {
	Matched bool
	Branch  string
}

// Validate reports requests whose fields contradict each other.
func (r Request) Validate() error {
	switch {
	case r.Pattern != nil && !r.UseRegex:
		return fmt.Errorf("%w: pattern given without regex mode", ErrInvalidRequest)
	case r.Func != nil && (r.UseRegex || r.Pattern != nil):
		return fmt.Errorf("%w: comparator cannot be combined with regex mode", ErrInvalidRequest)
	}
	return nil
}

// Compile compiles expected as an unanchored regular expression.
func Compile(expected string, ignoreCase bool) (*regexp.Regexp, error) {
	src := expected
	if ignoreCase {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &PatternError{Pattern: expected, Err: err}
	}
	return re, nil
}

// Compiled returns r with Pattern filled in when regex mode needs one.
// Callers use it to surface a bad pattern before doing any other work.
func (r Request) Compiled() (Request, error) {
	if err := r.Validate(); err != nil {
		return r, err
	}
	if !r.UseRegex || r.Pattern != nil {
		return r, nil
	}
	re, err := Compile(r.Expected, r.IgnoreCase)
	if err != nil {
		return r, err
	}
	r.Pattern = re
	return r, nil
}

// Match compares branch against r.
func Match(branch string, r Request) (Result, error) {
	r, err := r.Compiled()
	if err != nil {
		return Result{Branch: branch}, err
	}

	var matched bool
	switch {
	case r.Func != nil:
		if matched, err = r.Func(branch); err != nil {
			return Result{Branch: branch}, err
		}
	case r.UseRegex:
		matched = r.Pattern.MatchString(branch)
	case r.IgnoreCase:
		matched = branch == r.Expected || upper(branch) == upper(r.Expected)
	default:
		matched = branch == r.Expected
	}

	if r.Invert {
		matched = !matched
	}
	return Result{Matched: matched, Branch: branch}, nil
}

// upper applies full Unicode upper-case mapping, so "ß" becomes "SS".
// A Caser keeps state, so each call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
