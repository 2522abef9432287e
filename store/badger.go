package store

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"

	"quickbench/bench"
)

// badgerLogger slog.Logger 를 BadgerDB Logger 로
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

type badgerStore struct {
	db *badger.DB
}

func openBadger(cfg Config) (Store, error) {
	opts := badger.DefaultOptions(cfg.Path).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", cfg.Path)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Save(results ...bench.Result) error {
	wb := s.db.NewWriteBatch()
	for _, res := range results {
		val, err := encode(res)
		if err != nil {
			wb.Cancel()
			return err
		}
		if err := wb.Set([]byte(res.Name), val); err != nil {
			wb.Cancel()
			return errors.Wrapf(err, "set %q", res.Name)
		}
	}
	return errors.Wrap(wb.Flush(), "flush badger batch")
}

func (s *badgerStore) Load(name string) (bench.Result, error) {
	var res bench.Result
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		res, err = decode(item.Key(), val)
		return err
	})
	return res, err
}

func (s *badgerStore) List() ([]bench.Result, error) {
	var out []bench.Result
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			res, err := decode(item.KeyCopy(nil), val)
			if err != nil {
				return err
			}
			out = append(out, res)
		}
		return nil
	})
	return out, err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
