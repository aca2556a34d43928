package greeting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassic(t *testing.T) {
	require := require.New(t)

	g := New("")
	require.Equal("Hello World!", g.Text)
	require.Empty(g.Name)

	// Blank input falls back to the classic line.
	require.Equal(g, New("   "))
}

func TestNew(t *testing.T) {
	require := require.New(t)

	g := New("Alice")
	require.Equal("Alice", g.Name)
	require.Equal("Hello, Alice!", g.Text)
	require.Equal("Hello, Alice!", g.String())

	// Surrounding whitespace is trimmed, inner whitespace kept.
	require.Equal("Hello, Grace Hopper!", New("  Grace Hopper ").Text)
}

func TestNewDeterministic(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 3; i++ {
		require.Equal(Greeting{Text: Classic}, New(""))
		require.Equal(Greeting{Name: "Ada", Text: "Hello, Ada!"}, New("Ada"))
	}
}

func TestAll(t *testing.T) {
	require := require.New(t)

	require.Equal([]Greeting{{Text: Classic}}, All(nil))
	require.Equal([]Greeting{{Text: Classic}}, All([]string{}))

	greetings := All([]string{"Ada", "Linus"})
	require.Len(greetings, 2)
	require.Equal("Hello, Ada!", greetings[0].Text)
	require.Equal("Hello, Linus!", greetings[1].Text)
}

func TestFprintln(t *testing.T) {
	require := require.New(t)

	var sb strings.Builder
	require.NoError(Fprintln(&sb, New("")))
	require.Equal("Hello World!\n", sb.String())

	sb.Reset()
	require.NoError(Fprintln(&sb, New("Ada")))
	require.Equal("Hello, Ada!\n", sb.String())
}
