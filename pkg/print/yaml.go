package print

import (
	"os"

	"github.com/hellodev/cli/pkg/greeting"
	"gopkg.in/yaml.v3"
)

// YAML implements a YAML formatter.
//
// Its zero-value is ready for use.
type YAML struct{}

var _ Formatter = YAML{}

// Encode allows external callers to use the same encoder
func (YAML) Encode(obj interface{}) error {
	return yaml.NewEncoder(os.Stdout).Encode(obj)
}

// Greeting implementation.
func (YAML) greeting(g greeting.Greeting) error {
	return yaml.NewEncoder(os.Stdout).Encode(printGreeting(g))
}

// Greetings implementation.
func (YAML) greetings(gs []greeting.Greeting) error {
	return yaml.NewEncoder(os.Stdout).Encode(printGreetings(gs))
}
