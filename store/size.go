package store

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// DiskUsage 백엔드가 디스크에서 차지하는 바이트 수.
// bbolt 는 단일 파일, badger/pebble 은 디렉터리 전체.
func DiskUsage(backend, path string) (int64, error) {
	if backend == BackendBolt {
		size, err := boltSize(path)
		return size, errors.Wrapf(err, "stat %s", path)
	}

	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, errors.Wrapf(err, "walk %s", path)
}
