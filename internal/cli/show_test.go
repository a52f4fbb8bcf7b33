package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-yourage/internal/engine"
)

var fixedNow = time.Date(2020, 6, 15, 12, 30, 45, 0, time.UTC)

// runShow executes the show command with a fixed clock and returns stdout.
func runShow(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewShowCommand(&RootOptions{Clock: engine.FixedClock(fixedNow)})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestShow_Flags(t *testing.T) {
	out, err := runShow(t, "--name", "Ada", "--birthday", "1990-06-15")
	require.NoError(t, err)

	newGolden(t).Assert(t, "show_ada", []byte(out))
}

func TestShow_Query(t *testing.T) {
	out, err := runShow(t, "--query", "?birthday=1990-06-15&name=Ada")
	require.NoError(t, err)

	newGolden(t).Assert(t, "show_ada", []byte(out))
}

func TestShow_InvalidBirthday(t *testing.T) {
	out, err := runShow(t, "-n", "Ada", "-b", "15/06/1990")
	require.NoError(t, err, "A bad birthday is dropped, not rejected")

	assert.Equal(t, "Enter a valid birthday\n", out)
}

func TestShow_NoName(t *testing.T) {
	out, err := runShow(t, "-b", "1990-06-15")
	require.NoError(t, err)

	assert.Empty(t, out)
}

func TestShow_QueryExcludesFields(t *testing.T) {
	_, err := runShow(t, "--query", "name=Ada", "--name", "Bo")
	assert.Error(t, err)
}
