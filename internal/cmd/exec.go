package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/git-branch-is/internal/log"
)

// Result holds the captured output of a command that ran to completion.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CaptureContext runs name in dir and collects stdout, stderr and the exit code.
// Stdin is the null device so a prompting command cannot block.
// A non-zero exit status is reported in Result, not as an error; err is set
// only when the process could not be started or did not exit normally.
func CaptureContext(ctx context.Context, dir, name string, args ...string) (Result, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	defer func() { done(time.Since(start)) }()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = nil

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}

// OutputContext executes a command and returns stdout, with stderr in the
// error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	res, err := CaptureContext(ctx, dir, name, args...)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		if errMsg := strings.TrimSpace(string(res.Stderr)); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, fmt.Errorf("%s exited with status %d", name, res.ExitCode)
	}
	return res.Stdout, nil
}
