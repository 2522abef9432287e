package quicksort

import "golang.org/x/exp/constraints"

// Partitioner s[pivot] 값을 기준으로 [left, right] 를 나누고 피벗의 최종 위치를 돌려준다.
// 호출 후 최종 위치 왼쪽은 모두 <= 피벗, 오른쪽은 모두 >= 피벗.
// left < right, left <= pivot <= right 일 때만 호출된다. 어긋나면 *RangeError 로 패닉.
type Partitioner[T constraints.Ordered] func(s []T, left, right, pivot int) int

// PartitionTwoPointer 양쪽 포인터를 마주 보며 좁혀 가는 파티션.
// 피벗이 범위 안 어디에 있어도 동작한다.
func PartitionTwoPointer[T constraints.Ordered](s []T, left, right, pivot int) int {
	checkRange("two-pointer range", left, right, 2, len(s))
	checkIndex("two-pointer pivot", pivot, left, right, len(s))

	lp, rp := left, right
	pv := s[pivot]

	for {
		// 피벗보다 큰 첫 값
		for s[lp] <= pv && lp != rp {
			lp++
		}
		if lp == rp {
			break
		}
		// 피벗보다 작은 첫 값
		for s[rp] >= pv && lp != rp {
			rp--
		}
		if lp == rp {
			break
		}
		Swap(s, lp, rp)
	}

	// 만난 지점 기준으로 피벗이 들어갈 자리
	var dst int
	if pivot < lp {
		dst = lp
		if s[lp] > pv {
			dst = lp - 1
		}
	} else {
		dst = rp
		if s[rp] < pv {
			dst = rp + 1
		}
	}

	Swap(s, pivot, dst)
	return dst
}

// PartitionLomuto 피벗을 left 로 옮긴 뒤 한 번 훑는 파티션.
// 피벗과 같은 값은 오른쪽에 남는다 (엄격한 < 비교).
func PartitionLomuto[T constraints.Ordered](s []T, left, right, pivot int) int {
	checkRange("lomuto range", left, right, 2, len(s))
	checkIndex("lomuto pivot", pivot, left, right, len(s))

	Swap(s, left, pivot)
	p := s[left]
	b := left

	for i := left + 1; i <= right; i++ {
		if s[i] < p {
			b++
			Swap(s, b, i)
		}
	}
	Swap(s, left, b)
	return b
}

// PartitionHoare 피벗을 left 로 옮긴 뒤 양쪽에서 좁혀 오는 호어 파티션.
// i 는 right 에서, j 는 left 에서 멈추므로 범위 밖을 읽지 않는다.
func PartitionHoare[T constraints.Ordered](s []T, left, right, pivot int) int {
	checkRange("hoare range", left, right, 2, len(s))
	checkIndex("hoare pivot", pivot, left, right, len(s))

	Swap(s, left, pivot)
	p := s[left]
	i, j := left, right+1

	for {
		for i++; s[i] < p && i < right; i++ {
		}
		for j--; p < s[j] && j > left; j-- {
		}
		if i >= j {
			break
		}
		Swap(s, i, j)
	}

	Swap(s, left, j)
	return j
}

// PartitionThreeWay 다익스트라 3-way 파티션.
// [lt, gt] 가 피벗과 같은 구간이 되고, 그 구간의 가운데를 돌려준다.
func PartitionThreeWay[T constraints.Ordered](s []T, left, right, pivot int) int {
	checkRange("three-way range", left, right, 2, len(s))
	checkIndex("three-way pivot", pivot, left, right, len(s))

	Swap(s, left, pivot)
	p := s[left]

	lt := left    // s[left..lt-1] < p
	i := left + 1 // s[lt..i-1] == p
	gt := right   // s[gt+1..right] > p

	for i <= gt {
		switch {
		case s[i] < p:
			Swap(s, lt, i)
			lt++
			i++
		case s[i] > p:
			Swap(s, i, gt)
			gt--
		default:
			i++
		}
	}

	return lt + (gt-lt)/2
}
