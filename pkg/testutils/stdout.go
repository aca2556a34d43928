package testutils

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout runs fn and returns everything it wrote to os.Stdout.
//
// The formatters write to os.Stdout directly, so command tests swap it for a
// pipe. Reading happens on a separate goroutine to keep large outputs from
// filling the pipe buffer.
func CaptureStdout(t testing.TB, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		os.Stdout = orig
	}()

	outC := make(chan string)
	go func() {
		buf, _ := io.ReadAll(r)
		outC <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	return <-outC
}
