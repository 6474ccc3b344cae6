package sessions

import (
	"encoding/json"
	"sync"

	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/rayaboutique242-create/raya-console/storage"
	"github.com/rayaboutique242-create/raya-console/tenants"
	"github.com/rs/zerolog/log"
)

// Storage operation names passed to a StorageErrorHook.
const (
	OpGet    = "get"
	OpSet    = "set"
	OpRemove = "remove"
)

// StorageErrorHook observes persistence failures. Persistence is best effort, so the
// hook is the only place such failures surface. It must not call back into the Manager.
type StorageErrorHook func(op, key string, err error)

// Manager owns the session of one client. The in-memory copy is authoritative for
// the running process and is mirrored into the Store on every change.
type Manager struct {
	store          storage.Store
	onStorageError StorageErrorHook
	session        Session
	lock           sync.RWMutex
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithStorageErrorHook replaces the default hook, which logs a warning.
func WithStorageErrorHook(hook StorageErrorHook) ManagerOption {
	return func(m *Manager) {
		if hook != nil {
			m.onStorageError = hook
		}
	}
}

// New creates a Manager and loads any session already persisted in store.
func New(store storage.Store, options ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[sessions.New] store is required")
	}

	m := &Manager{
		store:          store,
		onStorageError: logStorageError,
	}
	for _, opt := range options {
		opt(m)
	}

	m.Load()
	return m, nil
}

func logStorageError(op, key string, err error) {
	log.Warn().Err(err).Str("op", op).Str("key", key).Msg("session storage unavailable")
}

// Load populates the in-memory session from the store. Keys that are missing or
// unreadable leave the corresponding token untouched.
func (m *Manager) Load() {
	m.lock.Lock()
	defer m.lock.Unlock()

	if token, ok := m.get(storage.KeyAccessToken); ok && token != "" {
		m.session.AccessToken = token
	}
	if token, ok := m.get(storage.KeyRefreshToken); ok && token != "" {
		m.session.RefreshToken = token
	} else if token, ok := m.get(storage.KeyLegacyRefresh); ok && token != "" {
		m.session.RefreshToken = token
	}
}

// Session returns a copy of the current token pair.
func (m *Manager) Session() Session {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.session
}

func (m *Manager) AccessToken() string {
	return m.Session().AccessToken
}

func (m *Manager) RefreshToken() string {
	return m.Session().RefreshToken
}

// SetAccessToken replaces the access token. An empty token removes it.
func (m *Manager) SetAccessToken(token string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.session.AccessToken = token
	m.put(storage.KeyAccessToken, token)
}

// SetRefreshToken replaces the refresh token. An empty token removes it.
func (m *Manager) SetRefreshToken(token string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.session.RefreshToken = token
	m.put(storage.KeyRefreshToken, token)
	m.remove(storage.KeyLegacyRefresh)
}

// Clear destroys the session: both tokens, the active tenant and the cached profile.
func (m *Manager) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.session = Session{}
	for _, key := range []string{
		storage.KeyAccessToken,
		storage.KeyRefreshToken,
		storage.KeyLegacyRefresh,
		storage.KeyActiveTenant,
		storage.KeyUserProfile,
	} {
		m.remove(key)
	}
}

// ActiveTenant returns the persisted tenant record, or nil when none is readable.
func (m *Manager) ActiveTenant() *tenants.ActiveTenant {
	m.lock.RLock()
	defer m.lock.RUnlock()

	raw, ok := m.get(storage.KeyActiveTenant)
	if !ok {
		return nil
	}
	tenant, err := tenants.Parse(raw)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring unreadable active tenant")
		return nil
	}
	return tenant
}

// ActiveTenantID returns the canonical reference of the active tenant, or "".
func (m *Manager) ActiveTenantID() string {
	return m.ActiveTenant().Reference()
}

// SetActiveTenant persists the selected tenant. A nil tenant removes the selection.
func (m *Manager) SetActiveTenant(tenant *tenants.ActiveTenant) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if tenant == nil {
		m.remove(storage.KeyActiveTenant)
		return nil
	}
	raw, err := tenant.Marshal()
	if err != nil {
		return err
	}
	m.put(storage.KeyActiveTenant, raw)
	return nil
}

// Profile returns the cached user profile, or nil.
func (m *Manager) Profile() json.RawMessage {
	m.lock.RLock()
	defer m.lock.RUnlock()

	raw, ok := m.get(storage.KeyUserProfile)
	if !ok || !json.Valid([]byte(raw)) {
		return nil
	}
	return json.RawMessage(raw)
}

// SetProfile caches the user profile. A nil profile removes it.
func (m *Manager) SetProfile(profile json.RawMessage) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if len(profile) == 0 {
		m.remove(storage.KeyUserProfile)
		return
	}
	m.put(storage.KeyUserProfile, string(profile))
}

func (m *Manager) get(key string) (string, bool) {
	value, ok, err := m.store.Get(key)
	if err != nil {
		m.onStorageError(OpGet, key, err)
		return "", false
	}
	return value, ok
}

func (m *Manager) put(key, value string) {
	if value == "" {
		m.remove(key)
		return
	}
	if err := m.store.Set(key, value); err != nil {
		m.onStorageError(OpSet, key, err)
	}
}

func (m *Manager) remove(key string) {
	if err := m.store.Remove(key); err != nil {
		m.onStorageError(OpRemove, key, err)
	}
}
