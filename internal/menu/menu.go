package menu

import (
	"context"
	"fmt"

	"github.com/raphi011/runmenu/internal/action"
	"github.com/raphi011/runmenu/internal/cmd"
	"github.com/raphi011/runmenu/internal/log"
	"github.com/raphi011/runmenu/internal/output"
	"github.com/raphi011/runmenu/internal/ui/prompt"
	"github.com/raphi011/runmenu/internal/ui/styles"
)

// PromptMessage is the title shown above the action list
const PromptMessage = "Select an option:"

// Prompter asks the operator to choose one of options.
type Prompter interface {
	Select(ctx context.Context, prompt string, options []string, defaultIndex int) (prompt.SelectResult, error)
}

// Runner executes a command and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Screen clears the display before the menu is drawn.
type Screen interface {
	Clear()
}

// Loop drives display → select → execute until Quit.
type Loop struct {
	Prompter Prompter
	Runner   Runner
	Screen   Screen
	Printer  *output.Printer
}

// Run shows the menu repeatedly. It returns nil when the operator quits,
// ctx.Err() when the context is cancelled, and an error if the prompt
// itself fails. Command failures never end the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := l.step(ctx)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// step runs one iteration and reports whether the operator chose Quit.
func (l *Loop) step(ctx context.Context) (bool, error) {
	logger := log.FromContext(ctx)

	l.Screen.Clear()

	actions := action.Table()
	res, err := l.Prompter.Select(ctx, PromptMessage, action.Labels(actions), action.DefaultIndex(actions))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, fmt.Errorf("select action: %w", err)
	}
	if res.Cancelled {
		logger.Debug("prompt interrupted, showing menu again")
		return false, nil
	}

	a, ok := action.Lookup(actions, res.Value)
	if !ok {
		return false, fmt.Errorf("unknown action %q", res.Value)
	}

	if a.IsQuit() {
		l.Printer.Printf("Exiting script. %s\n", styles.ErrorStyle.Render("Goodbye!"))
		return true, nil
	}

	l.execute(ctx, a)
	return false, nil
}

func (l *Loop) execute(ctx context.Context, a action.Action) {
	l.Printer.Success("Executing %s action...", a.Command)

	name, args, err := action.Split(a.Command)
	if err == nil {
		err = l.Runner.Run(ctx, name, args...)
	}
	if err != nil {
		log.FromContext(ctx).Debug("action failed",
			"action", a.Label,
			"reason", cmd.Classify(err),
			"exit", cmd.ExitCode(err),
			"err", err)
		l.Printer.Error("Error executing %s action.", a.Command)
	}
}
