package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/spf13/afero"
)

var _ Store = (*FileStore)(nil)

// FileStore persists every key in a single JSON document. Each write replaces the
// whole document through a temporary file and a rename.
type FileStore struct {
	fs     afero.Fs
	path   string
	sealer *Sealer
	lock   sync.Mutex
}

// FileStoreOption defines a function type to modify the FileStore instance.
type FileStoreOption func(*FileStore)

// WithSealer encrypts the document at rest.
func WithSealer(sealer *Sealer) FileStoreOption {
	return func(fs *FileStore) {
		fs.sealer = sealer
	}
}

func NewFileStore(fs afero.Fs, path string, options ...FileStoreOption) (*FileStore, error) {
	if fs == nil {
		return nil, errors.New("[NewFileStore] filesystem is required")
	}
	if path == "" {
		return nil, errors.New("[NewFileStore] path is required")
	}

	store := &FileStore{
		fs:   fs,
		path: path,
	}
	for _, opt := range options {
		opt(store)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrapf(err, "[NewFileStore] creating %s", filepath.Dir(path))
	}
	return store, nil
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.read()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, _, err := fs.readForWrite()
	if err != nil {
		return err
	}
	values[key] = value
	return fs.write(values)
}

func (fs *FileStore) Remove(key string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, discarded, err := fs.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok && !discarded {
		return nil
	}
	delete(values, key)
	return fs.write(values)
}

func (fs *FileStore) read() (map[string]string, error) {
	data, err := afero.ReadFile(fs.fs, fs.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", fs.path)
	}
	if len(data) == 0 {
		return make(map[string]string), nil
	}

	if fs.sealer != nil {
		if data, err = fs.sealer.Open(data); err != nil {
			return nil, err
		}
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrCorruptRecord, fs.path, err)
	}
	return values, nil
}

// readForWrite treats an undecodable document as empty so the next write
// replaces it. Read errors from the filesystem itself are still returned.
func (fs *FileStore) readForWrite() (map[string]string, bool, error) {
	values, err := fs.read()
	if errors.Is(err, errors.ErrCorruptRecord) || errors.Is(err, errors.ErrSealed) {
		return make(map[string]string), true, nil
	}
	return values, false, err
}

func (fs *FileStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", fs.path)
	}

	if fs.sealer != nil {
		if data, err = fs.sealer.Seal(data); err != nil {
			return err
		}
	}

	tmp := fs.path + ".tmp"
	if err := afero.WriteFile(fs.fs, tmp, data, 0o600); err != nil {
		return errors.Wrapf(err, "writing %s", tmp)
	}
	if err := fs.fs.Rename(tmp, fs.path); err != nil {
		return errors.Wrapf(err, "renaming %s", tmp)
	}
	return nil
}
