package config

import (
	"os"
	"path/filepath"
)

const (
	storePathVar   = "RAYA_STORE_PATH"
	storeSecretVar = "RAYA_STORE_SECRET"

	// MemoryStorePath selects the non-persistent in-memory store.
	MemoryStorePath = "memory"
)

type Storage struct{}

var _ StorageConfig = Storage{}

// GetStorePath returns the session file location, or MemoryStorePath.
func (Storage) GetStorePath() string {
	return GetEnv(storePathVar, defaultStorePath())
}

// GetStoreSecret returns the secret used to seal the session file. Empty leaves the file in plain JSON.
func (Storage) GetStoreSecret() string {
	return GetEnv(storeSecretVar, "")
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return MemoryStorePath
	}
	return filepath.Join(home, ".raya", "session.json")
}
