package storage

// Fixed keys of the persisted session.
const (
	KeyAccessToken   = "raya_token"
	KeyRefreshToken  = "raya_refresh_token"
	KeyLegacyRefresh = "raya_refresh" // read-only fallback, removed on the next refresh token write
	KeyActiveTenant  = "raya_current_tenant"
	KeyUserProfile   = "raya_user_v1"
)

// Store is a durable key-value store of opaque string values.
// Get reports ok=false with a nil error when the key is absent.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
