package store

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"

	"quickbench/bench"
)

var bucketName = []byte("results")

type boltStore struct {
	db *bbolt.DB
}

func openBolt(cfg Config) (Store, error) {
	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", cfg.Path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Save(results ...bench.Result) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, res := range results {
			val, err := encode(res)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(res.Name), val); err != nil {
				return errors.Wrapf(err, "put %q", res.Name)
			}
		}
		return nil
	})
}

func (s *boltStore) Load(name string) (bench.Result, error) {
	var res bench.Result
	err := s.db.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(bucketName).Get([]byte(name))
		if val == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		var err error
		res, err = decode([]byte(name), val)
		return err
	})
	return res, err
}

func (s *boltStore) List() ([]bench.Result, error) {
	var out []bench.Result
	err := s.db.View(func(tx *bbolt.Tx) error {
		// bbolt 커서는 키 순서로 돈다
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			res, err := decode(k, v)
			if err != nil {
				return err
			}
			out = append(out, res)
			return nil
		})
	})
	return out, err
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

// boltSize bbolt 는 파일 하나
func boltSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
