package quicksort

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNilStrategy 피벗 선택기나 파티셔너가 지정되지 않음
	ErrNilStrategy = errors.New("quicksort: nil pivot selector or partitioner")
	// ErrNotPermutation 정렬 결과가 입력의 순열이 아님
	ErrNotPermutation = errors.New("quicksort: result is not a permutation of the input")
)

// RangeError 범위 계약 위반. Stage 는 위반이 감지된 단계.
type RangeError struct {
	Stage string
	Index int
	Left  int
	Right int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("quicksort: %s index %d outside [%d, %d] (len %d)",
		e.Stage, e.Index, e.Left, e.Right, e.Len)
}

// checkIndex 인덱스가 [left, right] 밖이면 *RangeError 로 패닉
func checkIndex(stage string, idx, left, right, n int) {
	if idx < left || idx > right {
		panic(&RangeError{Stage: stage, Index: idx, Left: left, Right: right, Len: n})
	}
}

// checkRange [left, right] 가 s 안에 있고 최소 minLen 개 원소를 담는지 확인.
// 어긋나면 범위를 벗어난 쪽 경계를 Index 로 담아 *RangeError 로 패닉.
func checkRange(stage string, left, right, minLen, n int) {
	switch {
	case left < 0:
		panic(&RangeError{Stage: stage, Index: left, Left: left, Right: right, Len: n})
	case right >= n || right-left+1 < minLen:
		panic(&RangeError{Stage: stage, Index: right, Left: left, Right: right, Len: n})
	}
}

// recoverRange 패닉으로 올라온 *RangeError 를 err 로 돌려놓는다. 다른 패닉은 그대로 전파.
func recoverRange(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if re, ok := r.(*RangeError); ok {
		*err = errors.WithStack(re)
		return
	}
	panic(r)
}
