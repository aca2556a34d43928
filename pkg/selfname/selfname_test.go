package selfname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// CukeTest asserts its own type name below.
type CukeTest struct{}

// OtherTest hosts the same assertion under a different name.
type OtherTest struct{}

func TestCukeTestSelfName(t *testing.T) {
	require := require.New(t)

	ct := CukeTest{}
	require.Equal("CukeTest", Simple(ct))
	require.NoError(Check(ct, "CukeTest"))
	require.NoError(Check(&ct, "CukeTest"))
}

func TestMismatchCarriesBothNames(t *testing.T) {
	require := require.New(t)

	err := Check(OtherTest{}, "CukeTest")
	require.Error(err)

	var mismatch *MismatchError
	require.ErrorAs(err, &mismatch)
	require.Equal("CukeTest", mismatch.Expected)
	require.Equal("OtherTest", mismatch.Actual)
	require.Equal(`type name mismatch: expected "CukeTest", actual "OtherTest"`, err.Error())
}

func TestSimple(t *testing.T) {
	require := require.New(t)

	require.Equal("CukeTest", Simple(CukeTest{}))
	require.Equal("CukeTest", Simple(&CukeTest{}))

	// Double pointers unwrap all the way down.
	ct := &CukeTest{}
	require.Equal("CukeTest", Simple(&ct))

	require.Equal("string", Simple("x"))
	require.Equal("int", Simple(42))

	// Unnamed types have no simple name.
	require.Equal("", Simple(struct{}{}))
	require.Equal("", Simple([]string{}))
	require.Equal("", Simple(nil))
}

func TestCheckIdempotent(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 3; i++ {
		require.NoError(Check(CukeTest{}, "CukeTest"))
		require.Error(Check(OtherTest{}, "CukeTest"))
	}
}
