// Package git reads branch information by running the git CLI.
//
// All operations shell out to a git binary (configurable through
// [ResolveOptions].GitPath) rather than using a Go git library, so the
// user's git configuration, GIT_DIR handling and extra arguments such as -C
// behave exactly as on the command line.
//
//   - [CurrentBranch]: name of the checked out branch, "" when detached
//   - [LocalBranches]: names under refs/heads, used for suggestions
//   - [CheckGit]: verify the binary is reachable
//
// Failures to produce a branch name are [*ResolveError] values matching
// [ErrResolve]; malformed options match [ErrInvalidOptions].
package git
