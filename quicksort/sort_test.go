package quicksort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectors = map[string]PivotSelector[int]{
		"leftmost":  Leftmost[int],
		"rightmost": Rightmost[int],
		"middle":    Middle[int],
		"median3":   MedianOfThree[int],
	}
	fallbacks = map[string]Fallback[int]{
		"none":      nil,
		"insertion": InsertionSort[int],
		"shift":     ShiftInsertionSort[int],
		"merge":     MergeSort[int],
	}
)

func inputs(rng *rand.Rand) map[string][]int {
	const n = 300
	random := make([]int, n)
	dups := make([]int, n)
	sorted := make([]int, n)
	reversed := make([]int, n)
	for i := range n {
		random[i] = 100 + rng.Intn(899)
		dups[i] = rng.Intn(3)
		sorted[i] = i
		reversed[i] = n - i
	}
	return map[string][]int{
		"random":   random,
		"dups":     dups,
		"sorted":   sorted,
		"reversed": reversed,
		"equal":    slices.Repeat([]int{4}, 50),
		"empty":    {},
		"single":   {7},
	}
}

func TestSortAllCombinations(t *testing.T) {
	rng := rand.New(rand.NewSource(0xCAFEBABE))
	data := inputs(rng)

	for sname, sel := range selectors {
		for pname, part := range partitioners {
			for fname, fb := range fallbacks {
				for _, threshold := range []int{0, 8, 40} {
					st := Strategy[int]{Pivot: sel, Partition: part, Threshold: threshold, Fallback: fb}
					for dname, in := range data {
						s := slices.Clone(in)
						require.NoError(t, SortWith(s, st), "%s/%s/%s/%d/%s", sname, pname, fname, threshold, dname)
						assert.True(t, IsSorted(s), "%s/%s/%s/%d/%s", sname, pname, fname, threshold, dname)
						assert.NoError(t, CheckPermutation(in, s))
					}
				}
			}
		}
	}
}

func TestSortScenarioLeftmostLomuto(t *testing.T) {
	s := []int{5, 3, 8, 3, 9, 1}
	require.NoError(t, Sort(s, Leftmost[int], PartitionLomuto[int], 0, nil))
	assert.Equal(t, []int{1, 3, 3, 5, 8, 9}, s)
}

// counting 호출 횟수를 세는 전략 묶음
type counting struct {
	pivots, partitions int
	partitionSpans     []int
	fallbackSpans      []int
}

func (c *counting) strategy(threshold int, withFallback bool) Strategy[int] {
	st := Strategy[int]{
		Pivot: func(s []int, left, right int) int {
			c.pivots++
			return MedianOfThree(s, left, right)
		},
		Partition: func(s []int, left, right, pivot int) int {
			c.partitions++
			c.partitionSpans = append(c.partitionSpans, right-left)
			return PartitionTwoPointer(s, left, right, pivot)
		},
		Threshold: threshold,
	}
	if withFallback {
		st.Fallback = func(s []int, left, right int) {
			c.fallbackSpans = append(c.fallbackSpans, right-left)
			InsertionSort(s, left, right)
		}
	}
	return st
}

func TestSortTrivialInputsInvokeNothing(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "empty", in: []int{}, want: []int{}},
		{name: "single", in: []int{7}, want: []int{7}},
		{name: "pair", in: []int{2, 1}, want: []int{1, 2}},
		{name: "ordered pair", in: []int{1, 2}, want: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c counting
			s := slices.Clone(tt.in)
			require.NoError(t, SortWith(s, c.strategy(8, true)))
			assert.Equal(t, tt.want, s)
			assert.Zero(t, c.pivots)
			assert.Zero(t, c.partitions)
			assert.Empty(t, c.fallbackSpans)
		})
	}
}

func TestSortDescendingWithFallback(t *testing.T) {
	s := make([]int, 50)
	for i := range s {
		s[i] = 50 - i
	}

	var c counting
	require.NoError(t, SortWith(s, c.strategy(8, true)))

	want := make([]int, 50)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, s)
	require.NotEmpty(t, c.fallbackSpans)
	for _, span := range c.fallbackSpans {
		assert.LessOrEqual(t, span, 8)
		assert.Greater(t, span, 1)
	}
	// 8 이하 구간은 파티션하지 않는다
	require.NotEmpty(t, c.partitionSpans)
	for _, span := range c.partitionSpans {
		assert.Greater(t, span, 8)
	}
}

func TestSortAllEqual(t *testing.T) {
	for name, part := range partitioners {
		t.Run(name, func(t *testing.T) {
			s := slices.Repeat([]int{4}, 10)
			var calls int
			st := Strategy[int]{
				Pivot: Leftmost[int],
				Partition: func(s []int, left, right, pivot int) int {
					calls++
					return part(s, left, right, pivot)
				},
			}
			require.NoError(t, SortWith(s, st))
			assert.Equal(t, slices.Repeat([]int{4}, 10), s)
			// 재귀는 매번 최소 한 원소를 확정하므로 n 번을 넘지 않는다
			assert.LessOrEqual(t, calls, 10)
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(0xBAADF00D))
	s := make([]int, 200)
	for i := range s {
		s[i] = rng.Intn(50)
	}

	require.NoError(t, Sort(s, MedianOfThree[int], PartitionHoare[int], 10, InsertionSort[int]))
	once := slices.Clone(s)
	require.NoError(t, Sort(s, MedianOfThree[int], PartitionHoare[int], 10, InsertionSort[int]))
	assert.Equal(t, once, s)
}

func TestSortRangeOnlyTouchesRange(t *testing.T) {
	s := []int{9, 8, 7, 6, 5, 4, 3}
	st := Strategy[int]{Pivot: Middle[int], Partition: PartitionTwoPointer[int]}

	require.NoError(t, SortRange(s, 2, 5, st))
	assert.Equal(t, []int{9, 8, 4, 5, 6, 7, 3}, s)
}

func TestSortGeneric(t *testing.T) {
	words := []string{"pear", "apple", "fig", "apple", "kiwi"}
	require.NoError(t, Sort(words, MedianOfThree[string], PartitionLomuto[string], 0, nil))
	assert.Equal(t, []string{"apple", "apple", "fig", "kiwi", "pear"}, words)

	floats := []float64{2.5, -1, 0, 3.25, -1}
	require.NoError(t, Sort(floats, Rightmost[float64], PartitionThreeWay[float64], 2, ShiftInsertionSort[float64]))
	assert.Equal(t, []float64{-1, -1, 0, 2.5, 3.25}, floats)
}

func TestSortContractViolations(t *testing.T) {
	t.Run("nil strategy", func(t *testing.T) {
		err := SortWith([]int{3, 2, 1}, Strategy[int]{Pivot: Leftmost[int]})
		assert.ErrorIs(t, err, ErrNilStrategy)
	})

	t.Run("invalid range", func(t *testing.T) {
		st := Strategy[int]{Pivot: Leftmost[int], Partition: PartitionLomuto[int]}
		for _, r := range [][2]int{{-1, 1}, {2, 0}, {0, 3}} {
			err := SortRange([]int{3, 2, 1}, r[0], r[1], st)
			var re *RangeError
			assert.ErrorAs(t, err, &re, "range %v", r)
		}
	})

	t.Run("empty range is valid", func(t *testing.T) {
		st := Strategy[int]{Pivot: Leftmost[int], Partition: PartitionLomuto[int]}
		assert.NoError(t, SortRange([]int{3, 2, 1}, 1, 0, st))
	})

	t.Run("selector out of range", func(t *testing.T) {
		st := Strategy[int]{
			Pivot:     func(_ []int, _, right int) int { return right + 1 },
			Partition: PartitionLomuto[int],
		}
		err := SortWith([]int{5, 4, 3, 2, 1}, st)
		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "pivot selector result", re.Stage)
		assert.NotNil(t, errors.GetReportableStackTrace(err))
	})

	t.Run("partition result out of range", func(t *testing.T) {
		st := Strategy[int]{
			Pivot:     Leftmost[int],
			Partition: func(_ []int, left, _, _ int) int { return left - 1 },
		}
		err := SortWith([]int{5, 4, 3, 2, 1}, st)
		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "partition result", re.Stage)
		assert.NotNil(t, errors.GetReportableStackTrace(err))
	})
}
