package root

import (
	"testing"

	"github.com/hellodev/cli/cmd/hello/version"
	"github.com/hellodev/cli/pkg/testutils"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	testCases := []testutils.CommandTest{
		{
			Desc:    "no arguments",
			Fixture: "classic",
		},
		{
			Desc:    "json output",
			Args:    []string{"--output", "json"},
			Fixture: "classic_json",
		},
		{
			Desc:    "yaml output",
			Args:    []string{"-o", "yaml"},
			Fixture: "classic_yaml",
		},
		{
			Desc:    "greet through root",
			Args:    []string{"greet", "Ada", "-o", "json"},
			Fixture: "greet_json",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.Desc, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())

			cmd := New()
			testutils.TestCommandAndCompare(t, cmd, tC.Args, tC.Fixture)
		})
	}
}

// The classic greeting must be byte-stable run over run.
func TestRootDeterministic(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())

	cmd := New()
	first, err := testutils.RunCommand(t, cmd, nil)
	require.NoError(err)
	require.Equal("Hello World!\n", first)

	second, err := testutils.RunCommand(t, cmd, nil)
	require.NoError(err)
	require.Equal(first, second)
}

func TestRootInvalidOutput(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())

	cmd := New()
	_, err := testutils.RunCommand(t, cmd, []string{"--output", "xml"})
	require.Error(err)
	require.Contains(err.Error(), "--output must be one of")
}

func TestRootRejectsUnknownCommands(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())

	cmd := New()
	_, err := testutils.RunCommand(t, cmd, []string{"bogus"})
	require.Error(err)
	require.Contains(err.Error(), "unknown command")
}

func TestRootVersionFlag(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())

	cmd := New()
	// main sets this from the build metadata before executing.
	cmd.Version = "1.2.3"

	out, err := testutils.RunCommand(t, cmd, []string{"--version"})
	require.NoError(err)
	require.Equal(version.Version()+"\n", out)
}
