package storage

import (
	"github.com/rayaboutique242-create/raya-console/internal/config"
	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/spf13/afero"
)

// Open builds the Store described by the configuration on the given filesystem.
func Open(cfg config.StorageConfig, fs afero.Fs) (Store, error) {
	path := cfg.GetStorePath()
	if path == config.MemoryStorePath {
		return NewMemoryStore(), nil
	}

	var options []FileStoreOption
	if secret := cfg.GetStoreSecret(); secret != "" {
		sealer, err := NewSealer(secret)
		if err != nil {
			return nil, errors.Wrapf(err, "[Open] sealer")
		}
		options = append(options, WithSealer(sealer))
	}
	return NewFileStore(fs, path, options...)
}
