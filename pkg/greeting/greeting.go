// Package greeting renders the lines the CLI prints.
package greeting

import (
	"fmt"
	"io"
	"strings"
)

// Classic is the greeting used when no name is given.
const Classic = "Hello World!"

// Greeting is a single rendered greeting.
type Greeting struct {
	Name string
	Text string
}

// New returns the greeting for name. A blank name yields the classic greeting.
func New(name string) Greeting {
	name = strings.TrimSpace(name)
	if name == "" {
		return Greeting{Text: Classic}
	}
	return Greeting{
		Name: name,
		Text: fmt.Sprintf("Hello, %s!", name),
	}
}

// All returns one greeting per name, in order. No names yields the classic
// greeting alone.
func All(names []string) []Greeting {
	if len(names) == 0 {
		return []Greeting{New("")}
	}
	greetings := make([]Greeting, 0, len(names))
	for _, name := range names {
		greetings = append(greetings, New(name))
	}
	return greetings
}

// String returns the greeting text.
func (g Greeting) String() string {
	return g.Text
}

// Fprintln writes the greeting text followed by a newline to w.
func Fprintln(w io.Writer, g Greeting) error {
	_, err := fmt.Fprintln(w, g.Text)
	return err
}
