package prompts

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
)

// Surveyor is a Prompter that uses the survey package.
//
// Prompts are rendered on stderr so that stdout stays reserved for
// command output.
type Surveyor struct{}

var _ Prompter = Surveyor{}

func (s Surveyor) Confirm(question string, o ...Opt) (bool, error) {
	promptOpts := &opts{
		Default: true,
	}
	for _, opt := range o {
		opt(promptOpts)
	}

	d, ok := promptOpts.Default.(bool)
	if !ok {
		return false, errors.New("default value must be a bool")
	}

	if err := survey.AskOne(
		&survey.Confirm{
			Message: question,
			Default: d,
			Help:    promptOpts.Help,
		},
		&ok,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr),
	); err != nil {
		return false, errors.Wrap(err, "confirming")
	}

	return ok, nil
}

func (s Surveyor) Input(question string, p *string, o ...Opt) error {
	promptOpts := &opts{}
	for _, opt := range o {
		opt(promptOpts)
	}

	var d string
	if promptOpts.Default != nil {
		var ok bool
		if d, ok = promptOpts.Default.(string); !ok {
			return errors.New("default value must be a string")
		}
	}

	if err := survey.AskOne(
		&survey.Input{
			Message: question,
			Default: d,
			Help:    promptOpts.Help,
		},
		p,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr),
	); err != nil {
		return errors.Wrap(err, "prompting for input")
	}

	return nil
}
