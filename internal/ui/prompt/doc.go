// Package prompt provides the interactive selection prompt used by the menu.
//
// [Select] shows a fixed list of options with arrow-key (or j/k) navigation
// and returns the chosen entry. Interrupts (ctrl+c, esc, or SIGINT) are not
// errors: they come back as a [SelectResult] with Cancelled set, so the
// caller decides whether to re-prompt or give up.
package prompt
