package config

import (
	"strings"
	"time"
)

const (
	apiBaseVar     = "RAYA_API_BASE"
	httpTimeoutVar = "RAYA_HTTP_TIMEOUT"

	defaultAPIBase     = "http://localhost:3000/api"
	defaultHTTPTimeout = 30 * time.Second
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the API root every request path is appended to, without a trailing slash.
func (API) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiBaseVar, defaultAPIBase), "/")
}

func (API) GetHTTPTimeout() time.Duration {
	timeout, err := time.ParseDuration(GetEnv(httpTimeoutVar, ""))
	if err != nil || timeout <= 0 {
		return defaultHTTPTimeout
	}
	return timeout
}
