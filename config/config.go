// Package config quickbench YAML 설정.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"quickbench/store"
)

// ErrInvalid 설정 값 검증 실패
var ErrInvalid = errors.New("config: invalid")

// Generator 종류
const (
	KindRandom    = "random"
	KindSeeded    = "seeded"
	KindSorted    = "sorted"
	KindReversed  = "reversed"
	KindFewUnique = "few-unique"
	KindFile      = "file"
)

// Config 전체 설정
type Config struct {
	// Sizes 측정할 배열 크기
	Sizes      []int `json:"sizes" yaml:"sizes"`
	Iterations int   `json:"iterations" yaml:"iterations"`
	Warmup     int   `json:"warmup" yaml:"warmup"`
	// KeepDurations 반복별 실행시간까지 결과에 남길지
	KeepDurations bool `json:"keep_durations" yaml:"keep_durations"`

	Matrix MatrixConfig `json:"matrix" yaml:"matrix"`
	Output OutputConfig `json:"output" yaml:"output"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// MatrixConfig 조합표 구성
type MatrixConfig struct {
	Base         BaseConfig        `json:"base" yaml:"base"`
	Pivots       []string          `json:"pivots" yaml:"pivots"`
	Partitioners []string          `json:"partitioners" yaml:"partitioners"`
	Fallbacks    []string          `json:"fallbacks" yaml:"fallbacks"`
	Thresholds   ThresholdConfig   `json:"thresholds" yaml:"thresholds"`
	Generators   []GeneratorConfig `json:"generators" yaml:"generators"`
}

// BaseConfig 모든 변형의 출발점
type BaseConfig struct {
	Name        string          `json:"name" yaml:"name"`
	Pivot       string          `json:"pivot" yaml:"pivot"`
	Partitioner string          `json:"partitioner" yaml:"partitioner"`
	Generator   GeneratorConfig `json:"generator" yaml:"generator"`
}

// ThresholdConfig start 부터 stop 미만까지 t = 1 + int(t*growth)
type ThresholdConfig struct {
	Start  int     `json:"start" yaml:"start"`
	Stop   int     `json:"stop" yaml:"stop"`
	Growth float64 `json:"growth" yaml:"growth"`
}

// GeneratorConfig 데이터 생성기
type GeneratorConfig struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Min    int    `json:"min,omitempty" yaml:"min,omitempty"`
	Max    int    `json:"max,omitempty" yaml:"max,omitempty"`
	Seed   uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Unique int    `json:"unique,omitempty" yaml:"unique,omitempty"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
}

// OutputConfig 리포트 경로. 빈 값이면 해당 리포트를 쓰지 않는다.
type OutputConfig struct {
	CSV      string `json:"csv" yaml:"csv"`
	Markdown string `json:"markdown" yaml:"markdown"`
	JSON     string `json:"json" yaml:"json"`
	Metrics  string `json:"metrics" yaml:"metrics"`
	// Table 터미널 요약 표 출력
	Table bool `json:"table" yaml:"table"`
}

// StoreConfig 결과 저장소. Backend 가 비어 있으면 저장하지 않는다.
type StoreConfig struct {
	Backend string `json:"backend" yaml:"backend"`
	Path    string `json:"path" yaml:"path"`
}

// Validate 측정 전에 저장소 설정을 확인. 측정이 끝난 뒤 저장에 실패하면 결과를 잃는다.
func (s StoreConfig) Validate() error {
	switch s.Backend {
	case "":
		return nil
	case store.BackendBolt, store.BackendBadger, store.BackendPebble:
		if s.Path == "" {
			return errors.Wrapf(ErrInvalid, "store backend %q needs a path", s.Backend)
		}
		return nil
	default:
		return errors.Wrapf(ErrInvalid, "unknown store backend %q", s.Backend)
	}
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default 원래 벤치마크와 같은 기본값
func Default() Config {
	return Config{
		Sizes:      []int{25, 100, 250, 500, 1000, 10000},
		Iterations: 100,
		Matrix: MatrixConfig{
			Base: BaseConfig{
				Name:        "Default",
				Pivot:       "middle",
				Partitioner: "twopointer",
				Generator:   GeneratorConfig{Name: "random", Kind: KindRandom, Min: 100, Max: 999},
			},
			Pivots:       []string{"leftmost", "rightmost", "median3"},
			Partitioners: []string{"lomuto", "hoare"},
			Fallbacks:    []string{"insertion"},
			Thresholds:   ThresholdConfig{Start: 2, Stop: 128, Growth: 1.15},
			Generators: []GeneratorConfig{
				{Name: "sorted", Kind: KindSorted},
				{Name: "reversed", Kind: KindReversed},
				{Name: "Sequence:0xDEADBEEF", Kind: KindSeeded, Min: 10000, Max: 99999, Seed: 0xDEADBEEF},
				{Name: "Sequence:0xCAFEBABE", Kind: KindSeeded, Min: 10000, Max: 99999, Seed: 0xCAFEBABE},
				{Name: "Sequence:0xBAADF00D", Kind: KindSeeded, Min: 10000, Max: 99999, Seed: 0xBAADF00D},
			},
		},
		Output: OutputConfig{CSV: "out.csv", Table: true},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load 파일을 읽어 기본값 위에 덮는다
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate 값 범위 확인
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.Wrap(ErrInvalid, "sizes must not be empty")
	}
	for _, size := range c.Sizes {
		if size < 0 {
			return errors.Wrapf(ErrInvalid, "negative size %d", size)
		}
	}
	if c.Iterations < 1 {
		return errors.Wrapf(ErrInvalid, "iterations must be positive, got %d", c.Iterations)
	}
	if c.Warmup < 0 {
		return errors.Wrapf(ErrInvalid, "warmup must not be negative, got %d", c.Warmup)
	}

	th := c.Matrix.Thresholds
	if len(c.Matrix.Fallbacks) > 0 && (th.Start < 1 || th.Stop <= th.Start) {
		return errors.Wrapf(ErrInvalid, "thresholds [%d, %d) are empty", th.Start, th.Stop)
	}

	if err := c.Store.Validate(); err != nil {
		return err
	}

	if err := c.Matrix.Base.Generator.Validate(); err != nil {
		return errors.Wrap(err, "base generator")
	}
	for _, g := range c.Matrix.Generators {
		if err := g.Validate(); err != nil {
			return errors.Wrapf(err, "generator %q", g.Name)
		}
	}
	return nil
}

// Validate 생성기 설정 확인
func (g GeneratorConfig) Validate() error {
	switch g.Kind {
	case KindRandom, KindSeeded:
		if g.Max <= g.Min {
			return errors.Wrapf(ErrInvalid, "empty value range [%d, %d)", g.Min, g.Max)
		}
	case KindFewUnique:
		if g.Unique < 1 {
			return errors.Wrap(ErrInvalid, "unique must be positive")
		}
	case KindFile:
		if g.Path == "" {
			return errors.Wrap(ErrInvalid, "file generator needs a path")
		}
	case KindSorted, KindReversed:
	default:
		return errors.Wrapf(ErrInvalid, "unknown generator kind %q", g.Kind)
	}
	return nil
}
