package latest

import (
	"testing"

	"github.com/hellodev/cli/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestOutdated(t *testing.T) {
	require := require.New(t)

	require.False(outdated("1.2.3", "1.2.3"))
	require.False(outdated("1.2.3", "v1.2.3"))
	require.False(outdated("1.3.0", "1.2.9"))

	require.True(outdated("1.2.3", "1.2.4"))
	require.True(outdated("1.2.3", "v1.3.0"))
	require.True(outdated("0.9.9", "1.0.0"))

	// Unparseable versions fall back to a string comparison.
	require.True(outdated("nightly", "1.0.0"))
	require.False(outdated("nightly", "nightly"))
}

func TestWarnIfOutdated(t *testing.T) {
	require := require.New(t)

	l := &logger.MockLogger{}
	require.False(WarnIfOutdated(l, "1.2.3", "v1.2.3"))
	require.Empty(l.Entries)

	require.True(WarnIfOutdated(l, "1.2.3", "v1.3.0"))
	require.NotEmpty(l.Entries)
	require.Contains(l.Entries[0], "A newer CLI version is available (1.2.3 -> 1.3.0)")
}
