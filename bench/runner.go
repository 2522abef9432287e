// Package bench 퀵소트 설정 조합을 만들고 크기별로 반복 측정한다.
package bench

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"quickbench/quicksort"
)

// ErrNoGenerator 데이터 생성기가 없는 설정
var ErrNoGenerator = errors.New("bench: setup has no generator")

// Runner 측정 루프 설정
type Runner struct {
	Sizes      []int
	Iterations int
	// Warmup 크기마다 측정 전에 버리는 실행 횟수
	Warmup int
	// KeepDurations false 면 평균만 남긴다
	KeepDurations bool

	Logger  *slog.Logger
	Metrics *Metrics
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Run 모든 설정을 순서대로 측정. 취소되면 그때까지의 결과와 함께 에러를 돌려준다.
func (r *Runner) Run(ctx context.Context, setups []Setup) ([]Result, error) {
	results := make([]Result, 0, len(setups))
	for i, setup := range setups {
		res, err := r.RunSetup(ctx, setup)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		r.logger().Info("테스트 완료",
			"config", setup.Name,
			"index", i+1,
			"total", len(setups),
			"failures", res.TotalFailures())
	}
	return results, nil
}

// RunSetup 설정 하나를 크기별로 Iterations 번 측정
func (r *Runner) RunSetup(ctx context.Context, setup Setup) (Result, error) {
	if setup.Generator == nil {
		return Result{}, errors.Wrapf(ErrNoGenerator, "%q", setup.Name)
	}
	if err := setup.Strategy.Validate(); err != nil {
		return Result{}, errors.Wrapf(err, "%q", setup.Name)
	}

	res := Result{Name: setup.Name}
	for _, size := range r.Sizes {
		// 측정 전 시스템 안정화
		runtime.GC()

		for i := 0; i < r.Warmup; i++ {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrap(err, "warm-up interrupted")
			}
			r.trial(setup, size)
		}

		durations := make([]time.Duration, 0, r.Iterations)
		var total time.Duration
		failures := 0

		for i := 0; i < r.Iterations; i++ {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrap(err, "benchmark interrupted")
			}

			d, err := r.trial(setup, size)
			total += d
			durations = append(durations, d)
			if err != nil {
				failures++
				r.report(setup, size, i, err)
			}
			r.Metrics.observe(setup.Name, size, d, err != nil)
		}

		res.Sizes = append(res.Sizes, size)
		res.Failures = append(res.Failures, failures)
		if r.Iterations > 0 {
			res.Averages = append(res.Averages, total/time.Duration(r.Iterations))
		} else {
			res.Averages = append(res.Averages, 0)
		}
		if r.KeepDurations {
			res.Durations = append(res.Durations, durations)
		}
	}
	return res, nil
}

// trial 새 데이터를 만들어 정렬만 시간을 재고, 결과를 검증한다
func (r *Runner) trial(setup Setup, size int) (time.Duration, error) {
	data := setup.Generator.Generate(size)
	orig := slices.Clone(data)

	start := time.Now()
	err := quicksort.SortWith(data, setup.Strategy)
	d := time.Since(start)

	if err != nil {
		return d, err
	}
	if err := quicksort.Verify(orig, data); err != nil {
		return d, err
	}
	return d, quicksort.CheckPermutation(orig, data)
}

// report 검증 실패를 기록하고 계속 진행한다
func (r *Runner) report(setup Setup, size, iteration int, err error) {
	attrs := []any{
		"config", setup.Name,
		"size", size,
		"iteration", iteration,
		"error", err,
	}

	var oe *quicksort.OrderError[int]
	if errors.As(err, &oe) {
		indices := make([]int, len(oe.Inversions))
		for i, inv := range oe.Inversions {
			indices[i] = inv.Index
		}
		attrs = append(attrs,
			"indices", indices,
			"original", oe.Original,
			"sorted", oe.Sorted)
	}

	r.logger().Error("정렬 검증 실패", attrs...)
}
