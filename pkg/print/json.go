package print

import (
	"encoding/json"
	"os"

	"github.com/hellodev/cli/pkg/greeting"
)

// JSON implements a JSON formatter.
type JSON struct {
	enc *json.Encoder
}

var _ Formatter = &JSON{}

// NewJSONFormatter returns a new json formatter.
func NewJSONFormatter() *JSON {
	return &JSON{
		enc: json.NewEncoder(os.Stdout),
	}
}

// Encode allows external callers to use the same encoder
func (j *JSON) Encode(obj interface{}) error {
	return j.enc.Encode(obj)
}

// Greeting implementation.
func (j *JSON) greeting(g greeting.Greeting) error {
	return j.enc.Encode(printGreeting(g))
}

// Greetings implementation.
func (j *JSON) greetings(gs []greeting.Greeting) error {
	return j.enc.Encode(printGreetings(gs))
}
