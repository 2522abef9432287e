package quicksort

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Inversion s[Index-1] > s[Index] 인 인접 쌍
type Inversion[T constraints.Ordered] struct {
	Index int
	Prev  T
	Curr  T
}

// OrderError 정렬 후에도 남은 역전 쌍과 정렬 전/후 배열
type OrderError[T constraints.Ordered] struct {
	Inversions []Inversion[T]
	Original   []T
	Sorted     []T
}

func (e *OrderError[T]) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "quicksort: %d out-of-order element(s)", len(e.Inversions))
	for i, inv := range e.Inversions {
		if i == 3 {
			b.WriteString("; ...")
			break
		}
		fmt.Fprintf(&b, "; s[%d] = %v < s[%d] = %v", inv.Index, inv.Curr, inv.Index-1, inv.Prev)
	}
	return b.String()
}

// Inversions 선형 스캔으로 모든 인접 역전 쌍을 찾는다
func Inversions[T constraints.Ordered](s []T) []Inversion[T] {
	var out []Inversion[T]
	for k := 1; k < len(s); k++ {
		if s[k] < s[k-1] {
			out = append(out, Inversion[T]{Index: k, Prev: s[k-1], Curr: s[k]})
		}
	}
	return out
}

// IsSorted 비내림차순 여부
func IsSorted[T constraints.Ordered](s []T) bool {
	for k := 1; k < len(s); k++ {
		if s[k] < s[k-1] {
			return false
		}
	}
	return true
}

// Verify sorted 가 비내림차순인지 확인. 아니면 *OrderError.
func Verify[T constraints.Ordered](original, sorted []T) error {
	inv := Inversions(sorted)
	if len(inv) == 0 {
		return nil
	}
	return &OrderError[T]{
		Inversions: inv,
		Original:   append([]T(nil), original...),
		Sorted:     append([]T(nil), sorted...),
	}
}

// CheckPermutation 두 시퀀스의 값 멀티셋이 같은지 확인
func CheckPermutation[T constraints.Ordered](original, sorted []T) error {
	if len(original) != len(sorted) {
		return errors.Wrapf(ErrNotPermutation, "length %d != %d", len(sorted), len(original))
	}

	counts := make(map[T]int, len(original))
	for _, v := range original {
		counts[v]++
	}
	for _, v := range sorted {
		counts[v]--
		if counts[v] < 0 {
			return errors.Wrapf(ErrNotPermutation, "value %v appears more often than in the input", v)
		}
	}
	return nil
}
