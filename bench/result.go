package bench

import (
	"time"

	"github.com/samber/lo"
)

// Result 설정 하나의 크기별 결과
type Result struct {
	Name      string            `json:"name"`
	Sizes     []int             `json:"sizes"`
	Averages  []time.Duration   `json:"average_ns"`
	Durations [][]time.Duration `json:"durations_ns,omitempty"`
	Failures  []int             `json:"failures"`
}

// Average 해당 크기의 평균 실행시간
func (r Result) Average(size int) (time.Duration, bool) {
	i := lo.IndexOf(r.Sizes, size)
	if i < 0 || i >= len(r.Averages) {
		return 0, false
	}
	return r.Averages[i], true
}

// TotalFailures 검증 실패 총합
func (r Result) TotalFailures() int {
	return lo.Sum(r.Failures)
}

// SizesOf 결과들에 나오는 크기를 처음 나온 순서대로
func SizesOf(results []Result) []int {
	return lo.Uniq(lo.FlatMap(results, func(r Result, _ int) []int { return r.Sizes }))
}
