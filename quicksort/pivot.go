package quicksort

import "golang.org/x/exp/constraints"

// PivotSelector [left, right] 범위에서 피벗 인덱스를 고른다.
// 반환값은 반드시 [left, right] 안이어야 하며, s 는 그 범위 안에서만 바꿀 수 있다.
type PivotSelector[T constraints.Ordered] func(s []T, left, right int) int

// Leftmost 항상 맨 왼쪽
func Leftmost[T constraints.Ordered](_ []T, left, _ int) int {
	return left
}

// Rightmost 항상 맨 오른쪽
func Rightmost[T constraints.Ordered](_ []T, _, right int) int {
	return right
}

// Middle 항상 가운데 (기본 설정)
func Middle[T constraints.Ordered](_ []T, left, right int) int {
	return left + (right-left)/2
}

// MedianOfThree left, mid, right 세 값을 정렬해 두고 mid 를 돌려준다.
// 호출 후 s[left] <= s[mid] <= s[right].
func MedianOfThree[T constraints.Ordered](s []T, left, right int) int {
	checkRange("median-of-three range", left, right, 1, len(s))
	mid := left + (right-left)/2

	if s[right] < s[left] {
		Swap(s, right, left)
	}
	if s[mid] < s[left] {
		Swap(s, mid, left)
	}
	if s[right] < s[mid] {
		Swap(s, right, mid)
	}
	return mid
}
