package action

import (
	"errors"
	"strings"
)

// Labels of the built-in actions
const (
	LabelPull   = "Pull"
	LabelDeploy = "Deploy"
	LabelStart  = "Start"
	LabelQuit   = "Quit"
)

// DefaultLabel is the entry highlighted when the menu is shown
const DefaultLabel = LabelPull

// ErrEmptyCommand is returned by Split for a command line with no program name.
var ErrEmptyCommand = errors.New("empty command")

// Action is a single selectable menu entry.
type Action struct {
	Label   string
	Command string // empty for the terminate action
}

// IsQuit reports whether the action terminates the menu instead of running a command.
func (a Action) IsQuit() bool {
	return a.Command == ""
}

// Table returns a fresh copy of the menu actions in display order.
func Table() []Action {
	return []Action{
		{Label: LabelPull, Command: "git pull"},
		{Label: LabelDeploy, Command: "node src/deploy.js"},
		{Label: LabelStart, Command: "./node.sh"},
		{Label: LabelQuit},
	}
}

// Labels returns the display labels of actions, preserving order.
func Labels(actions []Action) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label
	}
	return labels
}

// Lookup finds the action with the given label.
func Lookup(actions []Action, label string) (Action, bool) {
	for _, a := range actions {
		if a.Label == label {
			return a, true
		}
	}
	return Action{}, false
}

// DefaultIndex returns the position of DefaultLabel, or 0 if it is missing.
func DefaultIndex(actions []Action) int {
	for i, a := range actions {
		if a.Label == DefaultLabel {
			return i
		}
	}
	return 0
}

// Split breaks a command line into a program name and its arguments.
// Fields are separated by whitespace; quotes have no special meaning.
func Split(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return fields[0], fields[1:], nil
}
