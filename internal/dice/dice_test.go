package dice

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"d20", "d20"},
		{"d20+4", "d20+4"},
		{"2D6+1d4-1", "2d6+d4-1"},
		{"1d20+4", "d20+4"},
		{"-1+d8", "-1+d8"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "4", "d", "d0", "0d6", "d20+", "d20++1", "elf", "d20 + 4", "1000d6"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalid, input)
	}
}

func TestRoll(t *testing.T) {
	expr, err := Parse("d20+4")
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 100; i++ {
		res := expr.Roll(rng)
		assert.GreaterOrEqual(t, res.Total, 5)
		assert.LessOrEqual(t, res.Total, 24)
		assert.Regexp(t, regexp.MustCompile(`^d20\+4 = \[\d+\]\+4 = \*\*\d+\*\*$`), res.String())
	}
}

func TestRoll_Negative(t *testing.T) {
	expr, err := Parse("1d1-3")
	require.NoError(t, err)

	res := expr.Roll(rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, -2, res.Total)
	assert.Equal(t, "d1-3 = [1]-3 = **-2**", res.String())
}
