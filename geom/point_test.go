package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2022/geom"
)

func TestPt2(t *testing.T) {
	a := geom.Pt2[int]{X: 2, Y: 18}
	b := geom.Pt2[int]{X: -2, Y: 15}
	assert.Equal(t, 7, a.MDist(b))
	assert.Equal(t, 7, b.MDist(a))
	assert.Equal(t, geom.Pt2[int]{X: 3, Y: 19}, a.Add(geom.Pt2[int]{X: 1, Y: 1}))

	tests := []struct {
		name       string
		head, tail geom.Pt2[int]
		want       geom.Pt2[int]
	}{
		{"straight", geom.Pt2[int]{X: 3, Y: 1}, geom.Pt2[int]{X: 1, Y: 1}, geom.Pt2[int]{X: 2, Y: 1}},
		{"diagonal", geom.Pt2[int]{X: 2, Y: 3}, geom.Pt2[int]{X: 1, Y: 1}, geom.Pt2[int]{X: 2, Y: 2}},
		{"same", geom.Pt2[int]{X: 1, Y: 1}, geom.Pt2[int]{X: 1, Y: 1}, geom.Pt2[int]{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tail.Toward(tt.head))
		})
	}

	assert.True(t, a.Touching(geom.Pt2[int]{X: 3, Y: 17}))
	assert.False(t, a.Touching(geom.Pt2[int]{X: 4, Y: 18}))
}

func TestPt3(t *testing.T) {
	p := geom.Pt3[int8]{X: 1, Y: 1, Z: 1}
	n := p.Neighbors6()
	neighbors := n[:]
	assert.Contains(t, neighbors, geom.Pt3[int8]{X: 2, Y: 1, Z: 1})
	assert.Contains(t, neighbors, geom.Pt3[int8]{X: 1, Y: 1, Z: 0})
	assert.NotContains(t, neighbors, p)

	lo, hi := geom.Pt3[int8]{}, geom.Pt3[int8]{X: 2, Y: 2, Z: 2}
	assert.True(t, p.Within(lo, hi))
	assert.False(t, p.Add(geom.Pt3[int8]{X: 2}).Within(lo, hi))
	assert.Equal(t, int8(-1), geom.Sign(int8(-5)))
}
