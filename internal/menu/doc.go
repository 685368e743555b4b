// Package menu implements the interactive action loop.
//
// Each iteration clears the terminal, asks the operator to pick an action
// (Pull is pre-selected), and runs the action's command as a child process.
// The loop only ends when Quit is chosen or the context is cancelled.
//
// Failures are absorbed: a command that exits non-zero or cannot be started
// prints an error line and the menu comes back. An interrupt at the prompt
// simply shows the menu again.
package menu
