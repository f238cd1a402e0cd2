package days_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days"
)

func TestAll_Numbered(t *testing.T) {
	all := days.All()
	require.Len(t, all, 21)
	for i, d := range all {
		assert.Equal(t, i+1, d.Number)
		assert.NotEmpty(t, d.Title)
		assert.NotNil(t, d.Solve)
	}
}

func TestGet(t *testing.T) {
	d, err := days.Get(12)
	require.NoError(t, err)
	assert.Equal(t, "Hill Climbing Algorithm", d.Title)

	for _, n := range []int{0, 22, -1} {
		_, err = days.Get(n)
		assert.ErrorIs(t, err, days.ErrUnknownDay)
	}
}
