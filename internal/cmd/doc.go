// Package cmd provides helpers for executing external commands.
//
// [CaptureContext] keeps both output streams and the exit status apart, so
// callers can classify outcomes themselves (git-branch-is treats a silent
// exit status 1 from git as "detached HEAD"). [OutputContext] is the simple
// form that folds stderr into the returned error.
//
// Every execution is echoed through the context logger when tracing is on.
package cmd
