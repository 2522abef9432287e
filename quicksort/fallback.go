package quicksort

import "golang.org/x/exp/constraints"

// Fallback 임계값 이하 구간을 맡는 보조 정렬. [left, right] 를 제자리 정렬한다.
type Fallback[T constraints.Ordered] func(s []T, left, right int)

// InsertionSort 인접 교환 삽입정렬
func InsertionSort[T constraints.Ordered](s []T, left, right int) {
	checkRange("insertion sort range", left, right, 0, len(s))
	for i := left + 1; i <= right; i++ {
		for k := i; k > left && s[k] < s[k-1]; k-- {
			Swap(s, k, k-1)
		}
	}
}

// ShiftInsertionSort 키를 들고 밀어내는 삽입정렬 (교환 대신 이동)
func ShiftInsertionSort[T constraints.Ordered](s []T, left, right int) {
	checkRange("shift insertion sort range", left, right, 0, len(s))
	for i := left + 1; i <= right; i++ {
		key := s[i]
		j := i - 1

		for j >= left && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// mergeCutoff 이 길이 미만이면 머지소트 안에서도 삽입정렬
const mergeCutoff = 16

// MergeSort 임시 버퍼를 쓰는 구간 머지소트
func MergeSort[T constraints.Ordered](s []T, left, right int) {
	checkRange("merge sort range", left, right, 0, len(s))
	if right-left < 1 {
		return
	}
	buf := make([]T, right-left+1)
	mergeSortRange(s, buf, left, right)
}

func mergeSortRange[T constraints.Ordered](s, buf []T, left, right int) {
	if right-left+1 < mergeCutoff {
		ShiftInsertionSort(s, left, right)
		return
	}

	mid := left + (right-left)/2
	mergeSortRange(s, buf, left, mid)
	mergeSortRange(s, buf, mid+1, right)

	// 이미 순서대로면 병합 생략
	if s[mid] <= s[mid+1] {
		return
	}
	merge(s, buf, left, mid, right)
}

// merge s[left..mid] 와 s[mid+1..right] 를 병합. buf 는 범위 길이 이상.
func merge[T constraints.Ordered](s, buf []T, left, mid, right int) {
	out := buf[:0]
	i, j := left, mid+1

	for i <= mid && j <= right {
		if s[i] <= s[j] {
			out = append(out, s[i])
			i++
		} else {
			out = append(out, s[j])
			j++
		}
	}

	// 남은 요소들 한 번에 추가
	out = append(out, s[i:mid+1]...)
	out = append(out, s[j:right+1]...)

	copy(s[left:right+1], out)
}
