package serve

import (
	"testing"

	"github.com/hellodev/cli/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestPortFromEnv(t *testing.T) {
	testCases := []struct {
		desc     string
		env      string
		expected int
		wantErr  bool
	}{
		{
			desc:     "unset",
			expected: 0,
		},
		{
			desc:     "valid",
			env:      "5000",
			expected: 5000,
		},
		{
			desc:    "invalid",
			env:     "not-a-port",
			wantErr: true,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require := require.New(t)
			t.Setenv("HELLO_PORT", tC.env)

			port, err := portFromEnv()
			if tC.wantErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(tC.expected, port)
		})
	}
}

func TestPortInUseError(t *testing.T) {
	require := require.New(t)

	var err error = portInUseError{port: 6000}
	require.Equal("port 6000 is already in use", err.Error())

	var explained utils.ErrorExplained
	require.ErrorAs(err, &explained)
	require.Contains(explained.ExplainError(), "--port")
}
