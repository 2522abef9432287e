package quicksort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPivotSelectorsStayInRange(t *testing.T) {
	selectors := map[string]PivotSelector[int]{
		"leftmost":  Leftmost[int],
		"rightmost": Rightmost[int],
		"middle":    Middle[int],
		"median3":   MedianOfThree[int],
	}
	base := []int{9, 4, 7, 1, 8, 2, 6, 3, 5, 0}

	for name, sel := range selectors {
		t.Run(name, func(t *testing.T) {
			for left := 0; left < len(base); left++ {
				for right := left; right < len(base); right++ {
					s := append([]int(nil), base...)
					p := sel(s, left, right)
					assert.GreaterOrEqual(t, p, left)
					assert.LessOrEqual(t, p, right)
					// 범위 밖은 건드리지 않는다
					assert.Equal(t, base[:left], s[:left])
					assert.Equal(t, base[right+1:], s[right+1:])
				}
			}
		})
	}
}

func TestMedianOfThree(t *testing.T) {
	tests := []struct {
		name   string
		in     []int
		left   int
		right  int
		want   []int
		wantIx int
	}{
		{name: "already ordered", in: []int{1, 5, 9}, left: 0, right: 2, want: []int{1, 5, 9}, wantIx: 1},
		{name: "reversed", in: []int{9, 5, 1}, left: 0, right: 2, want: []int{1, 5, 9}, wantIx: 1},
		{name: "median at left", in: []int{5, 9, 1}, left: 0, right: 2, want: []int{1, 5, 9}, wantIx: 1},
		{name: "single element", in: []int{3, 7, 2}, left: 1, right: 1, want: []int{3, 7, 2}, wantIx: 1},
		{name: "probes only", in: []int{8, 0, 0, 4, 0, 0, 2}, left: 0, right: 6, want: []int{2, 0, 0, 4, 0, 0, 8}, wantIx: 3},
		{name: "sub range", in: []int{100, 6, 3, 1, 100}, left: 1, right: 3, want: []int{100, 1, 3, 6, 100}, wantIx: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := append([]int(nil), tt.in...)
			got := MedianOfThree(s, tt.left, tt.right)
			assert.Equal(t, tt.wantIx, got)
			assert.Equal(t, tt.want, s)
			assert.LessOrEqual(t, s[tt.left], s[got])
			assert.LessOrEqual(t, s[got], s[tt.right])
		})
	}
}

func TestSimpleSelectors(t *testing.T) {
	s := []int{3, 1, 2}
	assert.Equal(t, 2, Leftmost(s, 2, 5))
	assert.Equal(t, 5, Rightmost(s, 2, 5))
	assert.Equal(t, 3, Middle(s, 2, 5))
	assert.Equal(t, []int{3, 1, 2}, s)
}

func TestMedianOfThreeRejectsRangeOutsideSlice(t *testing.T) {
	s := []int{3, 2, 1, 0}
	re := requireRangePanic(t, func() { MedianOfThree(s, 1, 4) })
	assert.Equal(t, 4, re.Index)
	assert.Equal(t, 4, re.Len)

	re = requireRangePanic(t, func() { MedianOfThree(s, 2, 1) })
	assert.Equal(t, 1, re.Index)
	assert.Equal(t, []int{3, 2, 1, 0}, s)
}
