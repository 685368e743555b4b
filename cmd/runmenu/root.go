package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	execcmd "github.com/raphi011/runmenu/internal/cmd"
	"github.com/raphi011/runmenu/internal/config"
	"github.com/raphi011/runmenu/internal/log"
	"github.com/raphi011/runmenu/internal/menu"
	"github.com/raphi011/runmenu/internal/output"
	"github.com/raphi011/runmenu/internal/ui/prompt"
	"github.com/raphi011/runmenu/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	workDir string
)

// rootCmd represents the menu; it has no subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runmenu",
		Short: "Interactive menu to pull, deploy and start the project",
		Long: `runmenu shows a menu of project actions and runs the one you pick:

  Pull     git pull
  Deploy   node src/deploy.js
  Start    ./node.sh
  Quit     leave the menu

The menu comes back after every command, whether it succeeded or not.
Press ctrl+c at the menu to redraw it; choose Quit to exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr, verbose, quiet)
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))

			if err := validateDir(workDir); err != nil {
				return err
			}
			return requireTerminal(os.Stdin)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show executed commands and failure details")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.Flags().StringVarP(&workDir, "dir", "C", "", "Run commands in `dir` instead of the current directory")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

// Execute loads config, sets up the context and runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(cfg.Theme)

	// SIGINT is handled by the prompt and the child runner, not here
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	ctx = output.WithPrinter(ctx, output.NewTerminal(os.Stdout, os.Environ()))
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func runMenu(ctx context.Context) error {
	loop := &menu.Loop{
		Prompter: prompt.Selector{},
		Runner:   execcmd.NewRunner(workDir),
		Screen:   menu.NewTerminal(os.Stdout),
		Printer:  output.FromContext(ctx),
	}
	return loop.Run(ctx)
}

// requireTerminal fails unless f is an interactive terminal.
func requireTerminal(f *os.File) error {
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return fmt.Errorf("runmenu needs an interactive terminal on stdin")
}

// validateDir checks that dir, when set, is an existing directory.
func validateDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("--dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("--dir: %s is not a directory", dir)
	}
	return nil
}
