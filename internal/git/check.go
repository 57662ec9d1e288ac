package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// CheckGit verifies that the git binary can be found.
// Paths (anything with a separator) are left to the exec call, as they
// resolve against the working directory of the resolution, not ours.
func CheckGit(path string) error {
	if path == "" {
		path = DefaultPath
	}
	if filepath.Base(path) != path {
		return nil
	}
	if _, err := exec.LookPath(path); err != nil {
		if path == DefaultPath {
			return ErrGitNotFound
		}
		return fmt.Errorf("%q not found in PATH: %w", path, err)
	}
	return nil
}
