package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, Input))

	base := stderrors.New("malformed input")
	cliErr := Wrap(fmt.Errorf("%w: line 3", base), Input, "check the file")
	require.NotNil(t, cliErr)
	assert.Equal(t, Input, cliErr.Category)
	assert.Equal(t, "malformed input: line 3", cliErr.Error())
	assert.ErrorIs(t, cliErr, base)

	outer := fmt.Errorf("solve: %w", cliErr)
	assert.Same(t, cliErr, AsCLIError(outer))
	assert.Nil(t, AsCLIError(base))
}

func TestFormatErrorPlain(t *testing.T) {
	tests := map[string]struct {
		err  *CLIError
		want string
	}{
		"message only": {
			err:  WrapWithMessage(stderrors.New("boom"), Runtime, "day 16"),
			want: "Error [Runtime Error]: day 16: boom\n",
		},
		"usage and remediation": {
			err: NewArgumentError("unknown day \"26\"", "aoc2022 solve <day>", "run 'aoc2022 list'"),
			want: "Error [Argument Error]: unknown day \"26\"\n\n" +
				"Usage: aoc2022 solve <day>\n\n" +
				"To fix this:\n  • run 'aoc2022 list'\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatErrorPlain(tt.err))
		})
	}
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Empty(t, FormatError(nil))
}
