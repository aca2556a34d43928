package greet

import (
	"context"

	"github.com/MakeNowJust/heredoc"
	"github.com/hellodev/cli/pkg/analytics"
	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/greeting"
	"github.com/hellodev/cli/pkg/print"
	"github.com/hellodev/cli/pkg/prompts"
	"github.com/spf13/cobra"
)

type config struct {
	root *cli.Config

	names       []string
	interactive bool
}

// New returns a new greet command.
func New(c *cli.Config) *cobra.Command {
	var cfg = config{root: c}

	cmd := &cobra.Command{
		Use:   "greet [name...]",
		Short: "Print a greeting for each name",
		Long:  "Print a greeting for each name, or the classic greeting when no names are given.",
		Example: heredoc.Doc(`
			hello greet
			hello greet Ada Linus
			hello greet --interactive
			hello greet Ada --output json
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.names = args
			return run(cmd.Root().Context(), cfg)
		},
	}

	cmd.Flags().BoolVarP(&cfg.interactive, "interactive", "i", false, "Prompt for the names to greet.")

	return cmd
}

// run runs the greet command.
func run(ctx context.Context, cfg config) error {
	names := cfg.names
	if len(names) == 0 && cfg.interactive {
		var err error
		if names, err = promptForNames(cfg.root.Prompter); err != nil {
			return err
		}
	}

	greetings := greeting.All(names)

	analytics.Track(cfg.root, "Greeting Printed", map[string]interface{}{
		"num_greetings": len(greetings),
		"interactive":   cfg.interactive,
	})

	if len(greetings) == 1 {
		return print.Greeting(greetings[0])
	}
	return print.Greetings(greetings)
}

// promptForNames collects names one at a time until the user stops. A blank
// first answer falls through to the classic greeting.
func promptForNames(p prompts.Prompter) ([]string, error) {
	if p == nil {
		return nil, nil
	}

	var names []string
	for {
		var name string
		if err := p.Input(
			"Who would you like to greet?",
			&name,
			prompts.WithHelp("Leave blank for the classic greeting."),
			prompts.WithDefault(""),
		); err != nil {
			return nil, err
		}
		if name == "" {
			return names, nil
		}
		names = append(names, name)

		if more, err := p.Confirm(
			"Greet someone else?",
			prompts.WithDefault(false),
		); err != nil {
			return nil, err
		} else if !more {
			return names, nil
		}
	}
}
