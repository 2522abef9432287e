// Package store 벤치마크 결과를 설정 이름 키로 저장하는 임베디드 KV 저장소.
//
// 같은 인터페이스 뒤에 bbolt, BadgerDB, PebbleDB 세 가지 백엔드가 있다.
// 값은 bench.Result 의 JSON.
package store

import (
	"encoding/json"
	"log/slog"

	"github.com/cockroachdb/errors"

	"quickbench/bench"
)

var (
	// ErrNotFound 해당 이름의 결과가 없음
	ErrNotFound = errors.New("store: result not found")
	// ErrUnknownBackend 지원하지 않는 백엔드 이름
	ErrUnknownBackend = errors.New("store: unknown backend")
	// ErrNoPath 디스크 백엔드인데 경로가 없음
	ErrNoPath = errors.New("store: path is required")
)

// Backend 이름
const (
	BackendBolt   = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// Store 결과 저장소
type Store interface {
	// Save 같은 이름이 있으면 덮어쓴다
	Save(results ...bench.Result) error
	Load(name string) (bench.Result, error)
	// List 키(이름) 순서로 전부
	List() ([]bench.Result, error)
	Close() error
}

// Config 저장소 설정
type Config struct {
	Backend string
	Path    string
	// InMemory badger/pebble 에서만 의미 있음
	InMemory bool
	Logger   *slog.Logger
}

// Open 설정에 맞는 백엔드를 연다
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendBolt:
		// bbolt 는 메모리 모드가 없다
		if cfg.Path == "" {
			return nil, errors.Wrapf(ErrNoPath, "backend %q", cfg.Backend)
		}
		return openBolt(cfg)
	case BackendBadger, BackendPebble:
		if cfg.Path == "" && !cfg.InMemory {
			return nil, errors.Wrapf(ErrNoPath, "backend %q", cfg.Backend)
		}
		if cfg.Backend == BackendBadger {
			return openBadger(cfg)
		}
		return openPebble(cfg)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", cfg.Backend)
	}
}

func encode(res bench.Result) ([]byte, error) {
	val, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %q", res.Name)
	}
	return val, nil
}

func decode(key, val []byte) (bench.Result, error) {
	var res bench.Result
	if err := json.Unmarshal(val, &res); err != nil {
		return bench.Result{}, errors.Wrapf(err, "decode %q", key)
	}
	return res, nil
}
