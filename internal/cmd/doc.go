// Package cmd runs the menu's external commands as child processes.
//
// Children inherit the terminal: they read from the operator's stdin and
// write straight to stdout/stderr, so prompts from git or the deploy script
// behave as if run by hand. The caller blocks until the child exits.
//
// # Interrupts
//
// While a child runs, SIGINT is caught by the parent and discarded. The
// terminal still delivers it to the child (same process group), so ctrl+c
// stops the command but not the menu.
//
// # Failures
//
// [Classify] sorts errors from [Runner.Run] into [Failure] categories so the
// caller can tell a command that ran and failed from one that never started.
package cmd
