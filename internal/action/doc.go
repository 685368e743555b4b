// Package action defines the fixed set of menu actions and how their
// command lines are turned into an argument vector.
//
// The table is always Pull, Deploy, Start, Quit in that order, with Pull
// as the default selection. Quit is the only action without a command.
//
// Command lines are split on whitespace only. There is no shell
// interpretation and no quoting, so an argument containing spaces cannot
// be expressed.
package action
