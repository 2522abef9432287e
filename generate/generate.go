// Package generate 벤치마크용 정수 배열 생성기
package generate

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator 요청한 길이의 새 배열을 만든다
type Generator interface {
	Generate(size int) []int
}

// Func 함수를 Generator 로
type Func func(size int) []int

func (f Func) Generate(size int) []int { return f(size) }

// Random [min, max) 균등 난수. 난수원은 호출자가 소유하고 넘겨준다.
func Random(faker *gofakeit.Faker, min, max int) Generator {
	return Func(func(size int) []int {
		return fill(faker, min, max, size)
	})
}

// NewFaker 시드 없는 난수원 (매 실행마다 다름)
func NewFaker() *gofakeit.Faker {
	return gofakeit.NewFaker(rand.NewPCG(rand.Uint64(), rand.Uint64()), false)
}

// Seeded [min, max) 고정 시드 난수.
// 매 호출마다 같은 시드로 새 난수원을 만들기 때문에 같은 길이면 항상 같은 배열이 나온다.
func Seeded(seed uint64, min, max int) Generator {
	return Func(func(size int) []int {
		faker := gofakeit.NewFaker(rand.NewPCG(seed, seed), false)
		return fill(faker, min, max, size)
	})
}

func fill(faker *gofakeit.Faker, min, max, size int) []int {
	data := make([]int, size)
	for i := range size {
		data[i] = faker.IntRange(min, max-1)
	}
	return data
}

// Sorted 0, 1, ..., n-1
func Sorted() Generator {
	return Func(func(size int) []int {
		data := make([]int, size)
		for i := range data {
			data[i] = i
		}
		return data
	})
}

// Reversed n, n-1, ..., 1
func Reversed() Generator {
	return Func(func(size int) []int {
		data := make([]int, size)
		for i := range data {
			data[i] = size - i
		}
		return data
	})
}

// FewUnique 값이 k 종류뿐인 중복 많은 배열
func FewUnique(faker *gofakeit.Faker, k int) Generator {
	if k < 1 {
		k = 1
	}
	return Func(func(size int) []int {
		return fill(faker, 0, k, size)
	})
}
