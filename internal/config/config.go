package config

import "time"

type Config interface {
	EnvConfig
	APIConfig
	StorageConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

// APIConfig describes how the client reaches the REST API.
type APIConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeout() time.Duration
}

// StorageConfig describes where the session is persisted between runs.
type StorageConfig interface {
	GetStorePath() string
	GetStoreSecret() string
}

type mainConfig struct {
	EnvVars
	API
	Storage
}

func New() Config {
	return mainConfig{}
}
