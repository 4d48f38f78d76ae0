package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavernkeep/internal/store"
)

func TestTimeCommand(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})

	assert.Equal(t, "It is currently day 1 at 8:00:00 am.", run(t, a, "time"))
	assert.Equal(t, "It is now day 1 at 8:30:00 am. Use ~undo~ to reverse.", run(t, a, "+30m"))
	assert.Equal(t, "It is currently day 1 at 8:30:00 am.", run(t, a, "now"))
	assert.Equal(t, "It is now day 1 at 8:00:00 am. Use ~undo~ to reverse.", run(t, a, "undo"))
	assert.Equal(t, "It is now day 1 at 8:30:00 am. Use ~undo~ to reverse.", run(t, a, "undo"))
	assert.Equal(t, "It is now day 2 at 12:30:00 pm. Use ~undo~ to reverse.", run(t, a, "+1d4h"))

	_, err := a.Command(context.Background(), "-3d")
	require.Error(t, err)
	assert.Equal(t, "Unable to go back 3 days from day 2 at 12:30:00 pm.", err.Error())
	assert.Equal(t, "It is currently day 2 at 12:30:00 pm.", run(t, a, "date"))
}

func TestParseTimeCommand(t *testing.T) {
	for _, input := range []string{"+0m", "+", "-abc", "later"} {
		cmd, _ := parseTimeCommand(input, nil)
		assert.Nil(t, cmd, input)
	}

	cmd, _ := parseTimeCommand("-10r", nil)
	require.NotNil(t, cmd)
	assert.Equal(t, "-10r", cmd.String())
}

func TestAutocompleteTimeCommand(t *testing.T) {
	assert.Equal(t,
		[]Suggestion{{Text: "+1h", Summary: "advance time by 1 hour"}},
		autocompleteTimeCommand("+1h", nil))
	assert.Equal(t,
		[]Suggestion{{Text: "-2d", Summary: "rewind time by 2 days"}},
		autocompleteTimeCommand("-2d", nil))
	assert.Equal(t,
		[]Suggestion{{Text: "time", Summary: "get the current time"}},
		autocompleteTimeCommand("ti", nil))
}
