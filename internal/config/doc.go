// Package config handles loading and validation of git-branch-is configuration.
//
// Configuration is read from ~/.config/git-branch-is/config.toml and supplies
// defaults for command-line flags. Flags given on the command line always win.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags
//   - GIT_BRANCH_IS_GIT_PATH env var: git binary
//   - Config file settings (file location overridable with GIT_BRANCH_IS_CONFIG)
//   - Default values
//
// # Example
//
//	git_path = "/usr/local/bin/git"
//	git_args = ["-c", "core.quotepath=off"]
//	ignore_case = false
//	quiet = false
//	verbose = false
//	suggest = true
//	color = "auto"   # auto, always or never
//	theme = "nord"   # default, dracula, none or nord
//
// A missing file yields defaults. A file that fails to parse or validate
// also yields defaults, together with an error the caller reports as a
// warning.
package config
