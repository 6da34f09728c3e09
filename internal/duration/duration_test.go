package duration

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1d", 86400},
		{"2h", 7200},
		{"15m", 900},
		{"45", 45},
		{"3600", 3600},
		{"2s", 2},
		{"1D", 86400},
		{"3H", 10800},
		{"10M", 600},
		{"15 m", 900},
		{"15 minutes", 900},
		{"2hours", 7200},
		{"7days", 604800},
		{"15x", 15},
		{"15  m", 15},
		{"15\u00a0m", 900},
		{"1\u3000h", 3600},
		{"2\u2028d", 172800},
		{"15\u00a0\u00a0m", 15},
		{"10s later", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"",
		"0",
		"05m",
		"abc",
		"h",
		" 15m",
		"-5",
		"+5",
		"99999999999999999999999",
		"9223372036854775807d",
	}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			require.ErrorIs(t, err, ErrInvalidDuration)
			assert.Zero(t, got)
		})
	}
}

func TestParseReparseWithSecondsUnit(t *testing.T) {
	inputs := []string{"1d", "2h", "15m", "45", "3600", "2s", "1 h", "30Minutes"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			seconds, err := Parse(input)
			require.NoError(t, err)

			again, err := Parse(strconv.Itoa(seconds) + "s")
			require.NoError(t, err)
			assert.Equal(t, seconds, again)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3600.0", Format(3600))
	assert.Equal(t, "2.0", Format(2))
	assert.Equal(t, "86400.0", Format(Day))
}
