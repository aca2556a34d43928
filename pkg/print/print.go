package print

import (
	"github.com/hellodev/cli/pkg/greeting"
)

var (
	// DefaultFormatter is the default formatter to use.
	//
	// It defaults to the `text` formatter which prints greeting
	// lines with no decoration, keeping stdout byte-stable.
	DefaultFormatter Formatter = Text{}

	// ValidFormats lists the accepted values of the --output flag.
	ValidFormats = []string{"text", "json", "yaml", "table"}
)

// Formatter represents an output formatter.
type Formatter interface {
	greeting(greeting.Greeting) error
	greetings([]greeting.Greeting) error
}

// Greeting prints a single greeting using the default formatter.
func Greeting(g greeting.Greeting) error {
	return DefaultFormatter.greeting(g)
}

// Greetings prints the given slice of greetings using the default formatter.
func Greetings(gs []greeting.Greeting) error {
	return DefaultFormatter.greetings(gs)
}

// Print outputs obj based on DefaultFormatter
// If JSON or YAML, uses that formatter to encode obj
// Otherwise, calls defaultPrintFunc to render the obj
func Print(obj interface{}, defaultPrintFunc func()) error {
	switch f := DefaultFormatter.(type) {
	case *JSON:
		return f.Encode(obj)
	case YAML:
		return f.Encode(obj)
	default:
		defaultPrintFunc()
	}
	return nil
}
