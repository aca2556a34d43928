package testutils

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CommandTest specifies a test case for a CLI command.
type CommandTest struct {
	// Desc is a description of the test case.
	Desc string
	// Inputs are the responses that will be passed to any prompts, in order.
	Inputs []interface{}
	// Args are any arguments (and flags) that will be passed to the Cobra command.
	Args []string
	// Fixture is the name of the golden file the stdout is compared against.
	Fixture string
}

// RunCommand executes cmd with the given args and returns everything it
// wrote to stdout.
//
// By default, cobra reads os.Args[1:]. Tests always set args, even when
// empty, so that directives like MaximumNArgs see exactly what the test
// passes.
func RunCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	var err error
	out := CaptureStdout(t, func() {
		err = cmd.ExecuteContext(context.Background())
	})
	return out, err
}

// TestCommandAndCompare runs the given command and compares its stdout to the
// golden file named fixture under the calling package's testdata/golden.
//
// Regenerate golden files with `go test -update`.
func TestCommandAndCompare(
	t *testing.T,
	cmd *cobra.Command,
	args []string,
	fixture string,
) {
	t.Helper()

	out, err := RunCommand(t, cmd, args)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, fixture, []byte(out))
}
