package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/testutils"
	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	require := require.New(t)

	expected := fmt.Sprintf("hello version <unknown> %s/%s", runtime.GOOS, runtime.GOARCH)
	require.Equal(expected, Version())
}

func TestVersionCommand(t *testing.T) {
	require := require.New(t)

	cmd := New(&cli.Config{})
	out, err := testutils.RunCommand(t, cmd, nil)
	require.NoError(err)
	require.Equal(Version()+"\n", out)
}
