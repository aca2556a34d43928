package print

import (
	"testing"

	"github.com/hellodev/cli/pkg/greeting"
	"github.com/hellodev/cli/pkg/testutils"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	require := require.New(t)

	out := testutils.CaptureStdout(t, func() {
		require.NoError(Text{}.greeting(greeting.New("")))
	})
	require.Equal("Hello World!\n", out)

	out = testutils.CaptureStdout(t, func() {
		require.NoError(Text{}.greetings(greeting.All([]string{"Ada", "Linus"})))
	})
	require.Equal("Hello, Ada!\nHello, Linus!\n", out)
}

func TestJSONFormatter(t *testing.T) {
	require := require.New(t)

	out := testutils.CaptureStdout(t, func() {
		require.NoError(NewJSONFormatter().greeting(greeting.New("Ada")))
	})
	require.JSONEq(`{"name":"Ada","text":"Hello, Ada!"}`, out)

	// The classic greeting has no name to report.
	out = testutils.CaptureStdout(t, func() {
		require.NoError(NewJSONFormatter().greeting(greeting.New("")))
	})
	require.JSONEq(`{"text":"Hello World!"}`, out)

	out = testutils.CaptureStdout(t, func() {
		require.NoError(NewJSONFormatter().greetings(greeting.All([]string{"Ada"})))
	})
	require.JSONEq(`[{"name":"Ada","text":"Hello, Ada!"}]`, out)
}

func TestYAMLFormatter(t *testing.T) {
	require := require.New(t)

	out := testutils.CaptureStdout(t, func() {
		require.NoError(YAML{}.greeting(greeting.New("Ada")))
	})
	require.Equal("name: Ada\ntext: Hello, Ada!\n", out)
}

func TestTableFormatter(t *testing.T) {
	require := require.New(t)

	out := testutils.CaptureStdout(t, func() {
		require.NoError(Table{}.greetings(greeting.All([]string{"Ada", "Linus"})))
	})
	require.Contains(out, "NAME")
	require.Contains(out, "GREETING")
	require.Contains(out, "Hello, Ada!")
	require.Contains(out, "Hello, Linus!")
}

func TestPrint(t *testing.T) {
	require := require.New(t)

	old := DefaultFormatter
	defer func() {
		DefaultFormatter = old
	}()

	// The text formatter falls back to the provided print func.
	DefaultFormatter = Text{}
	called := false
	require.NoError(Print(struct{}{}, func() {
		called = true
	}))
	require.True(called)

	// The json formatter encodes the object itself.
	out := testutils.CaptureStdout(t, func() {
		DefaultFormatter = NewJSONFormatter()
		require.NoError(Print(map[string]string{"a": "b"}, func() {
			t.Error("print func should not be called")
		}))
	})
	require.JSONEq(`{"a":"b"}`, out)
}
