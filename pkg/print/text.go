package print

import (
	"os"

	"github.com/hellodev/cli/pkg/greeting"
)

// Text implements a plain text formatter.
//
// It prints greeting lines exactly as rendered, one per line, and is the
// default formatter.
//
// Its zero-value is ready for use.
type Text struct{}

var _ Formatter = Text{}

// Greeting implementation.
func (Text) greeting(g greeting.Greeting) error {
	return greeting.Fprintln(os.Stdout, g)
}

// Greetings implementation.
func (Text) greetings(gs []greeting.Greeting) error {
	for _, g := range gs {
		if err := greeting.Fprintln(os.Stdout, g); err != nil {
			return err
		}
	}
	return nil
}
