package cli

import (
	"github.com/hellodev/cli/pkg/prompts"
)

// Config represents command configuration.
//
// The config is passed down to all commands from
// the root command.
type Config struct {
	// DebugMode indicates if the CLI should produce additional
	// debug output to guide end-users through issues.
	DebugMode bool

	// WithTelemetry indicates if the CLI should send usage analytics and
	// errors, even if it's been previously disabled.
	WithTelemetry bool

	// Version prints the CLI version.
	Version bool

	// Prompter represents the prompter to use to get user input.
	Prompter prompts.Prompter
}

// Must should be used for Cobra initialize commands that can return an error
// to enforce that they do not produce errors.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
