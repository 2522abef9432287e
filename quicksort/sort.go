// Package quicksort 피벗 선택, 파티션, 보조 정렬을 갈아 끼울 수 있는 퀵소트.
//
// 정렬은 항상 제자리에서 이뤄지며, 재귀 호출은 같은 버퍼의 겹치지 않는
// 인덱스 구간을 넘겨받는다.
package quicksort

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Strategy 한 번의 정렬 동안 바뀌지 않는 전략 묶음.
// Threshold 가 0 이하이거나 Fallback 이 nil 이면 보조 정렬은 쓰지 않는다.
type Strategy[T constraints.Ordered] struct {
	Pivot     PivotSelector[T]
	Partition Partitioner[T]
	Threshold int
	Fallback  Fallback[T]
}

// Validate 필수 전략이 채워졌는지 확인
func (st Strategy[T]) Validate() error {
	if st.Pivot == nil || st.Partition == nil {
		return ErrNilStrategy
	}
	return nil
}

// Sort 전체 시퀀스를 정렬
func Sort[T constraints.Ordered](s []T, pivot PivotSelector[T], partition Partitioner[T], threshold int, fallback Fallback[T]) error {
	return SortWith(s, Strategy[T]{
		Pivot:     pivot,
		Partition: partition,
		Threshold: threshold,
		Fallback:  fallback,
	})
}

// SortWith 전략 묶음으로 전체 시퀀스를 정렬
func SortWith[T constraints.Ordered](s []T, st Strategy[T]) error {
	return SortRange(s, 0, len(s)-1, st)
}

// SortRange 닫힌 구간 [left, right] 만 정렬.
// 0 <= left <= right+1 <= len(s) 를 만족해야 한다.
func SortRange[T constraints.Ordered](s []T, left, right int, st Strategy[T]) (err error) {
	if err := st.Validate(); err != nil {
		return err
	}
	if left < 0 || right+1 < left || right+1 > len(s) {
		return errors.WithStack(&RangeError{Stage: "range", Index: right, Left: left, Right: right, Len: len(s)})
	}

	defer recoverRange(&err)
	sortRange(s, left, right, &st)
	return nil
}

func sortRange[T constraints.Ordered](s []T, left, right int, st *Strategy[T]) {
	span := right - left

	// 원소 0~1개
	if span < 1 {
		return
	}
	// 원소 2개, 최대 한 번 교환
	if span < 2 {
		if s[left] > s[right] {
			Swap(s, left, right)
		}
		return
	}

	// 임계값 이하 구간은 보조 정렬로 끝낸다
	if st.Fallback != nil && span <= st.Threshold {
		st.Fallback(s, left, right)
		return
	}

	pivot := st.Pivot(s, left, right)
	checkIndex("pivot selector result", pivot, left, right, len(s))

	p := st.Partition(s, left, right, pivot)
	checkIndex("partition result", p, left, right, len(s))

	sortRange(s, left, p-1, st)
	sortRange(s, p+1, right, st)
}
