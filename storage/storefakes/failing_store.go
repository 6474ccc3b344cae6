package storefakes

import (
	"errors"
	"sync"

	"github.com/rayaboutique242-create/raya-console/storage"
)

var ErrStorageUnavailable = errors.New("storage unavailable")

var _ storage.Store = (*FailingStore)(nil)

// FailingStore wraps a Store and fails the operations that are switched on.
type FailingStore struct {
	inner      storage.Store
	failGet    bool
	failWrites bool
	writes     int
	lock       sync.Mutex
}

func NewFailingStore(inner storage.Store) *FailingStore {
	if inner == nil {
		inner = storage.NewMemoryStore()
	}
	return &FailingStore{inner: inner}
}

func (fs *FailingStore) FailGets(fail bool) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.failGet = fail
}

func (fs *FailingStore) FailWrites(fail bool) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.failWrites = fail
}

// Writes returns the number of attempted Set and Remove calls.
func (fs *FailingStore) Writes() int {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	return fs.writes
}

func (fs *FailingStore) Get(key string) (string, bool, error) {
	fs.lock.Lock()
	fail := fs.failGet
	fs.lock.Unlock()
	if fail {
		return "", false, ErrStorageUnavailable
	}
	return fs.inner.Get(key)
}

func (fs *FailingStore) Set(key, value string) error {
	if fs.countWrite() {
		return ErrStorageUnavailable
	}
	return fs.inner.Set(key, value)
}

func (fs *FailingStore) Remove(key string) error {
	if fs.countWrite() {
		return ErrStorageUnavailable
	}
	return fs.inner.Remove(key)
}

func (fs *FailingStore) countWrite() bool {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.writes++
	return fs.failWrites
}
