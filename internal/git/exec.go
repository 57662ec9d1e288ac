package git

import (
	"strings"
)

// DefaultPath is the git binary used when ResolveOptions.GitPath is empty.
const DefaultPath = "git"

// gitArgs builds the global part of a git command line followed by sub.
// GitDir becomes --git-dir=<dir> unless GitArgs set --git-dir themselves;
// GitArgs always come last so git applies them over anything before.
func gitArgs(opts ResolveOptions, sub ...string) []string {
	args := make([]string, 0, 1+len(opts.GitArgs)+len(sub))
	if opts.GitDir != "" && !setsGitDir(opts.GitArgs) {
		args = append(args, "--git-dir="+opts.GitDir)
	}
	args = append(args, opts.GitArgs...)
	return append(args, sub...)
}

func setsGitDir(args []string) bool {
	for _, a := range args {
		if a == "--git-dir" || strings.HasPrefix(a, "--git-dir=") {
			return true
		}
	}
	return false
}
