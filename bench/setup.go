package bench

import (
	"fmt"

	"github.com/samber/lo"

	"quickbench/generate"
	"quickbench/quicksort"
)

// Setup 이름 붙은 테스트 설정. 전략 묶음은 모든 반복과 크기에 재사용된다.
type Setup struct {
	Name      string
	Strategy  quicksort.Strategy[int]
	Generator generate.Generator
}

// Matrix 기본 설정에서 변형을 펼쳐내는 선언적 조합표.
// 펼치는 순서: 피벗 -> 데이터 -> 파티션 -> 보조 정렬 x 임계값.
// 각 단계는 입력 설정을 그대로 두고 그 뒤에 변형들을 붙인다.
type Matrix struct {
	Base       Setup
	Pivots     []Named[quicksort.PivotSelector[int]]
	Generators []Named[generate.Generator]
	Partitions []Named[quicksort.Partitioner[int]]
	Fallbacks  []Named[quicksort.Fallback[int]]
	Thresholds []int
}

// Build 모든 조합을 만든다
func (m Matrix) Build() []Setup {
	setups := []Setup{m.Base}

	setups = expand(setups, func(s Setup) []Setup {
		return lo.Map(m.Pivots, func(p Named[quicksort.PivotSelector[int]], _ int) Setup {
			v := s
			v.Name = p.Label
			v.Strategy.Pivot = p.Value
			return v
		})
	})

	setups = expand(setups, func(s Setup) []Setup {
		return lo.Map(m.Generators, func(g Named[generate.Generator], _ int) Setup {
			v := s
			v.Name = fmt.Sprintf("%s on %s data", s.Name, g.Label)
			v.Generator = g.Value
			return v
		})
	})

	setups = expand(setups, func(s Setup) []Setup {
		return lo.Map(m.Partitions, func(p Named[quicksort.Partitioner[int]], _ int) Setup {
			v := s
			v.Name = s.Name + "+" + p.Label
			v.Strategy.Partition = p.Value
			return v
		})
	})

	setups = expand(setups, func(s Setup) []Setup {
		return lo.FlatMap(m.Fallbacks, func(f Named[quicksort.Fallback[int]], _ int) []Setup {
			return lo.Map(m.Thresholds, func(t int, _ int) Setup {
				v := s
				v.Name = fmt.Sprintf("%s+%s below %d", s.Name, f.Label, t)
				v.Strategy.Threshold = t
				v.Strategy.Fallback = f.Value
				return v
			})
		})
	})

	return setups
}

// expand 각 설정 뒤에 그 변형들을 이어 붙인다
func expand(setups []Setup, variants func(Setup) []Setup) []Setup {
	return lo.FlatMap(setups, func(s Setup, _ int) []Setup {
		return append([]Setup{s}, variants(s)...)
	})
}

// Thresholds start 부터 stop 미만까지 t = 1 + int(t*growth) 로 늘려 가는 임계값 목록
func Thresholds(start, stop int, growth float64) []int {
	var out []int
	for t := start; t < stop; {
		out = append(out, t)
		next := 1 + int(float64(t)*growth)
		if next <= t {
			next = t + 1
		}
		t = next
	}
	return out
}
