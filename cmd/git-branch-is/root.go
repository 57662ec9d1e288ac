package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-branch-is/internal/check"
	"github.com/raphi011/git-branch-is/internal/config"
	"github.com/raphi011/git-branch-is/internal/git"
	"github.com/raphi011/git-branch-is/internal/log"
	"github.com/raphi011/git-branch-is/internal/match"
	"github.com/raphi011/git-branch-is/internal/output"
	"github.com/raphi011/git-branch-is/internal/styles"
	"github.com/raphi011/git-branch-is/internal/suggest"
)

// flags holds the parsed command line, seeded from config.
type flags struct {
	cwd        string
	gitArgs    []string
	gitDir     string
	gitPath    string
	ignoreCase bool
	invert     bool
	not        bool
	quiet      bool
	regex      bool
	verbose    bool
	suggest    bool
	trace      bool
	color      string
}

func newRootCmd(cfg config.Config, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-branch-is [flags] <branch_name>",
		Short: "Check that the current git branch has the expected name",
		Long: `git-branch-is checks the name of the current git branch and exits with
status 0 when it matches branch_name, 1 when it does not.

Exit status 2 means branch_name is not a valid regular expression (with
--regex) or the command line is invalid. Exit status 3 means git could not
report the current branch. A detached HEAD has the empty name "".`,
		Example: `  git-branch-is main                   # fail unless on main
  git-branch-is -I main                # fail when on main
  git-branch-is -r '^release/'         # any release branch
  git-branch-is -C ../other -i MAIN    # another repo, ignoring case`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one argument is required, got %d", len(args))
			}
			return nil
		},
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg, f, args[0])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	fl := cmd.Flags()
	fl.StringVarP(&f.cwd, "cwd", "C", "", "run as if started in `path`")
	fl.StringArrayVar(&f.gitArgs, "git-arg", nil, "additional `arg`ument to git (can be repeated)")
	fl.StringVar(&f.gitDir, "git-dir", "", "set the path to the repository")
	fl.StringVar(&f.gitPath, "git-path", cfg.GitPath, "set the path to the git binary")
	fl.BoolVarP(&f.ignoreCase, "ignore-case", "i", cfg.IgnoreCase, "compare/match branch_name case-insensitively")
	fl.BoolVarP(&f.invert, "invert-match", "I", false, "inverts/negates comparison")
	fl.BoolVar(&f.not, "not", false, "inverts/negates comparison (same as --invert-match)")
	fl.BoolVarP(&f.quiet, "quiet", "q", cfg.Quiet, "suppress warning message if branch differs")
	fl.BoolVarP(&f.regex, "regex", "r", false, "match branch_name as a regular expression")
	fl.BoolVarP(&f.verbose, "verbose", "v", cfg.Verbose, "print a message if the branch matches")
	fl.BoolVar(&f.suggest, "suggest", cfg.Suggest, "name the closest local branch if branch differs")
	fl.BoolVar(&f.trace, "trace", false, "print git commands as they run")
	fl.StringVar(&f.color, "color", cfg.Color, "colorize messages: auto, always or never")

	return cmd
}

// runCheck performs the check and reports its outcome.
// It always returns an *exitError once flags are valid.
func runCheck(cmd *cobra.Command, cfg config.Config, f *flags, expected string) error {
	if !styles.ValidColorMode(f.color) {
		return fmt.Errorf("invalid --color %q: must be auto, always or never", f.color)
	}

	ctx := cmd.Context()
	stderr := styles.NewWriter(cmd.ErrOrStderr(), f.color)
	stdout := styles.NewWriter(cmd.OutOrStdout(), f.color)
	l := log.New(stderr, f.trace, f.quiet)
	ctx = log.WithLogger(ctx, l)
	ctx = output.WithPrinter(ctx, stdout)

	req := match.Request{
		Expected:   expected,
		IgnoreCase: f.ignoreCase,
		UseRegex:   f.regex,
		Invert:     f.invert || f.not,
	}
	opts := git.ResolveOptions{
		Dir:     f.cwd,
		GitDir:  f.gitDir,
		GitArgs: append(append([]string(nil), cfg.GitArgs...), f.gitArgs...),
		GitPath: f.gitPath,
	}

	// A bad pattern is reported before git is looked at.
	req, err := req.Compiled()
	if err != nil {
		l.Errorf("%v", err)
		return &exitError{code: exitCodeFor(err)}
	}

	if err := git.CheckGit(opts.GitPath); err != nil {
		l.Errorf("%v", err)
		return &exitError{code: exitResolve}
	}

	res, err := check.Check(ctx, req, opts)
	if err != nil {
		l.Errorf("%v", err)
		return &exitError{code: exitCodeFor(err)}
	}

	if res.Matched {
		if f.verbose {
			output.FromContext(ctx).CurrentBranch(res.Branch)
		}
		return &exitError{code: exitMatch}
	}

	reportMismatch(ctx, req, opts, res.Branch, f.suggest)
	return &exitError{code: exitMismatch}
}

func reportMismatch(ctx context.Context, req match.Request, opts git.ResolveOptions, branch string, wantSuggestion bool) {
	l := log.FromContext(ctx)
	if l.IsQuiet() {
		return
	}

	current, want := quote(branch), quote(req.Expected)
	switch {
	case req.UseRegex && req.Invert:
		l.Warnf("Current branch %s matches %s.", current, want)
	case req.UseRegex:
		l.Warnf("Current branch %s does not match %s.", current, want)
	case req.Invert:
		l.Warnf("Current branch is %s.", current)
	default:
		l.Warnf("Current branch is %s, not %s.", current, want)
	}

	if !wantSuggestion || req.UseRegex || req.Invert {
		return
	}
	name, ok, err := suggest.Branch(ctx, opts, req.Expected, branch)
	if err != nil || !ok {
		return
	}
	l.Printf("Did you mean %s?\n", quote(name))
}

func quote(s string) string {
	return styles.AccentStyle.Render(fmt.Sprintf("%q", s))
}

// run parses args, performs the check and returns the exit code.
// All output goes to stdout and stderr.
func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	var f flags
	cmd := newRootCmd(cfg, &f)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		// --help and --version
		return exitMatch
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Flag and argument errors: report them with usage, even when quiet.
	l := log.New(styles.NewWriter(stderr, styles.ColorAuto), false, false)
	l.Errorf("%v", err)
	fmt.Fprintln(stderr)
	fmt.Fprint(stderr, cmd.UsageString())
	return exitUsage
}

// Execute loads the config and runs the command against os.Args.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := styles.Init(cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
