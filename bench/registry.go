package bench

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"quickbench/quicksort"
)

// ErrUnknownComponent 등록되지 않은 전략 이름
var ErrUnknownComponent = errors.New("bench: unknown component")

// Named 이름 붙은 전략 구성요소. Label 은 리포트에 찍히는 표시 이름.
type Named[V any] struct {
	Key   string
	Label string
	Value V
}

var pivotRegistry = []Named[quicksort.PivotSelector[int]]{
	{Key: "middle", Label: "Always Pick Middle", Value: quicksort.Middle[int]},
	{Key: "leftmost", Label: "Always Pick Leftmost", Value: quicksort.Leftmost[int]},
	{Key: "rightmost", Label: "Always Pick Rightmost", Value: quicksort.Rightmost[int]},
	{Key: "median3", Label: "Median Of Three", Value: quicksort.MedianOfThree[int]},
}

var partitionRegistry = []Named[quicksort.Partitioner[int]]{
	{Key: "twopointer", Label: "twopointer", Value: quicksort.PartitionTwoPointer[int]},
	{Key: "lomuto", Label: "lomuto", Value: quicksort.PartitionLomuto[int]},
	{Key: "hoare", Label: "hoare", Value: quicksort.PartitionHoare[int]},
	{Key: "threeway", Label: "threeway", Value: quicksort.PartitionThreeWay[int]},
}

var fallbackRegistry = []Named[quicksort.Fallback[int]]{
	{Key: "insertion", Label: "insertion", Value: quicksort.InsertionSort[int]},
	{Key: "shift", Label: "shift-insertion", Value: quicksort.ShiftInsertionSort[int]},
	{Key: "merge", Label: "merge", Value: quicksort.MergeSort[int]},
}

func lookup[V any](kind string, registry []Named[V], keys []string) ([]Named[V], error) {
	out := make([]Named[V], 0, len(keys))
	for _, key := range keys {
		n, ok := lo.Find(registry, func(n Named[V]) bool { return n.Key == key })
		if !ok {
			return nil, errors.Wrapf(ErrUnknownComponent, "%s %q", kind, key)
		}
		out = append(out, n)
	}
	return out, nil
}

// Pivots 이름으로 피벗 선택기를 찾는다
func Pivots(keys ...string) ([]Named[quicksort.PivotSelector[int]], error) {
	return lookup("pivot", pivotRegistry, keys)
}

// Partitions 이름으로 파티셔너를 찾는다
func Partitions(keys ...string) ([]Named[quicksort.Partitioner[int]], error) {
	return lookup("partitioner", partitionRegistry, keys)
}

// Fallbacks 이름으로 보조 정렬을 찾는다
func Fallbacks(keys ...string) ([]Named[quicksort.Fallback[int]], error) {
	return lookup("fallback", fallbackRegistry, keys)
}

// Keys 등록된 구성요소 이름 목록 (pivot, partitioner, fallback 순)
func Keys() (pivots, partitions, fallbacks []string) {
	pivots = lo.Map(pivotRegistry, func(n Named[quicksort.PivotSelector[int]], _ int) string { return n.Key })
	partitions = lo.Map(partitionRegistry, func(n Named[quicksort.Partitioner[int]], _ int) string { return n.Key })
	fallbacks = lo.Map(fallbackRegistry, func(n Named[quicksort.Fallback[int]], _ int) string { return n.Key })
	return pivots, partitions, fallbacks
}
