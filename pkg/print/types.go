package print

import (
	"github.com/hellodev/cli/pkg/greeting"
)

// This struct mirrors greeting.Greeting, but with json/yaml tags.
type printGreeting struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Text string `json:"text" yaml:"text"`
}

func printGreetings(gs []greeting.Greeting) []printGreeting {
	pgs := make([]printGreeting, len(gs))
	for i, g := range gs {
		pgs[i] = printGreeting(g)
	}
	return pgs
}
