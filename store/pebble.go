package store

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"quickbench/bench"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(cfg Config) (Store, error) {
	opts := &pebble.Options{}
	dir := cfg.Path
	if cfg.InMemory {
		opts.FS = vfs.NewMem()
		if dir == "" {
			dir = "quickbench"
		}
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Save(results ...bench.Result) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	for _, res := range results {
		val, err := encode(res)
		if err != nil {
			return err
		}
		if err := batch.Set([]byte(res.Name), val, nil); err != nil {
			return errors.Wrapf(err, "set %q", res.Name)
		}
	}
	return errors.Wrap(batch.Commit(pebble.Sync), "commit pebble batch")
}

func (s *pebbleStore) Load(name string) (bench.Result, error) {
	val, closer, err := s.db.Get([]byte(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return bench.Result{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return bench.Result{}, errors.Wrapf(err, "get %q", name)
	}
	defer closer.Close()

	return decode([]byte(name), val)
}

func (s *pebbleStore) List() ([]bench.Result, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "new pebble iterator")
	}

	var out []bench.Result
	for iter.First(); iter.Valid(); iter.Next() {
		res, err := decode(iter.Key(), iter.Value())
		if err != nil {
			iter.Close()
			return nil, err
		}
		out = append(out, res)
	}
	return out, iter.Close()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
