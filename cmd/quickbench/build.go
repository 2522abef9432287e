package main

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/cockroachdb/errors"

	"quickbench/bench"
	"quickbench/config"
	"quickbench/generate"
	"quickbench/quicksort"
)

// newGenerator 설정 하나를 생성기로. faker 는 시드 없는 난수원.
func newGenerator(g config.GeneratorConfig, faker *gofakeit.Faker) (generate.Generator, error) {
	switch g.Kind {
	case config.KindRandom:
		return generate.Random(faker, g.Min, g.Max), nil
	case config.KindSeeded:
		return generate.Seeded(g.Seed, g.Min, g.Max), nil
	case config.KindSorted:
		return generate.Sorted(), nil
	case config.KindReversed:
		return generate.Reversed(), nil
	case config.KindFewUnique:
		return generate.FewUnique(faker, g.Unique), nil
	case config.KindFile:
		return generate.File(g.Path)
	default:
		return nil, errors.Wrapf(config.ErrInvalid, "unknown generator kind %q", g.Kind)
	}
}

// buildMatrix 설정으로 조합표를 만든다
func buildMatrix(m config.MatrixConfig, faker *gofakeit.Faker) (bench.Matrix, error) {
	var out bench.Matrix

	basePivot, err := bench.Pivots(m.Base.Pivot)
	if err != nil {
		return out, err
	}
	basePart, err := bench.Partitions(m.Base.Partitioner)
	if err != nil {
		return out, err
	}
	baseGen, err := newGenerator(m.Base.Generator, faker)
	if err != nil {
		return out, errors.Wrap(err, "base generator")
	}

	out.Base = bench.Setup{
		Name: m.Base.Name,
		Strategy: quicksort.Strategy[int]{
			Pivot:     basePivot[0].Value,
			Partition: basePart[0].Value,
		},
		Generator: baseGen,
	}

	if out.Pivots, err = bench.Pivots(m.Pivots...); err != nil {
		return out, err
	}
	if out.Partitions, err = bench.Partitions(m.Partitioners...); err != nil {
		return out, err
	}
	if out.Fallbacks, err = bench.Fallbacks(m.Fallbacks...); err != nil {
		return out, err
	}

	for _, g := range m.Generators {
		gen, err := newGenerator(g, faker)
		if err != nil {
			return out, errors.Wrapf(err, "generator %q", g.Name)
		}
		out.Generators = append(out.Generators, bench.Named[generate.Generator]{Key: g.Name, Label: g.Name, Value: gen})
	}

	if len(out.Fallbacks) > 0 {
		out.Thresholds = bench.Thresholds(m.Thresholds.Start, m.Thresholds.Stop, m.Thresholds.Growth)
	}
	return out, nil
}
