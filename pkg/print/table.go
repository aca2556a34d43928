package print

import (
	"os"

	"github.com/hellodev/cli/pkg/greeting"
	"github.com/olekukonko/tablewriter"
)

// Table implements a table formatter.
//
// Its zero-value is ready for use.
type Table struct{}

var _ Formatter = Table{}

// Greeting implementation.
func (t Table) greeting(g greeting.Greeting) error {
	return t.greetings([]greeting.Greeting{g})
}

// Greetings implementation.
func (Table) greetings(gs []greeting.Greeting) error {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetBorder(false)
	tw.SetHeader([]string{"name", "greeting"})
	tw.SetAutoWrapText(false)

	for _, g := range gs {
		tw.Append([]string{g.Name, g.Text})
	}

	tw.Render()
	return nil
}
