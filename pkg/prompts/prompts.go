package prompts

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter is an interface for prompting the user for input.
type Prompter interface {
	Confirm(question string, opts ...Opt) (bool, error)
	Input(question string, p *string, opts ...Opt) error
}

type opts struct {
	Help    string
	Default interface{}
}

type Opt func(opts *opts)

// WithHelp adds help text to the prompt.
func WithHelp(help string) Opt {
	return func(o *opts) {
		o.Help = help
	}
}

// WithDefault sets a default value for the prompt to use if the user does not enter a value.
func WithDefault(defaultValue interface{}) Opt {
	return func(o *opts) {
		o.Default = defaultValue
	}
}

// CanPrompt checks that both stdin and stderr are terminal
func CanPrompt() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}
