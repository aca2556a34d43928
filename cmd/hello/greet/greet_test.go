package greet

import (
	"testing"

	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/prompts"
	"github.com/hellodev/cli/pkg/testutils"
)

func TestGreet(t *testing.T) {
	testCases := []testutils.CommandTest{
		{
			Desc:    "no names",
			Fixture: "classic",
		},
		{
			Desc:    "single name",
			Args:    []string{"Ada"},
			Fixture: "single",
		},
		{
			Desc:    "multiple names",
			Args:    []string{"Ada", "Linus", "Grace"},
			Fixture: "multiple",
		},
		{
			Desc:    "interactive",
			Args:    []string{"--interactive"},
			Inputs:  []interface{}{"Ada", true, "Linus", false},
			Fixture: "interactive",
		},
		{
			Desc:    "interactive blank answer",
			Args:    []string{"-i"},
			Inputs:  []interface{}{""},
			Fixture: "classic",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.Desc, func(t *testing.T) {
			var cfg = &cli.Config{
				Prompter: prompts.NewMock(tC.Inputs...),
			}

			cmd := New(cfg)
			testutils.TestCommandAndCompare(t, cmd, tC.Args, tC.Fixture)
		})
	}
}
