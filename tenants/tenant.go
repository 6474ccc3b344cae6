package tenants

import (
	"encoding/json"
	"strings"

	"github.com/rayaboutique242-create/raya-console/internal/errors"
)

// ActiveTenant is the organization the user is currently working in.
// Records returned by the membership endpoint carry both the membership ID (ID)
// and the tenant it belongs to (TenantID); plain tenant records only carry ID.
type ActiveTenant struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// Reference returns the tenant identifier sent to the API, preferring TenantID over ID.
func (t *ActiveTenant) Reference() string {
	if t == nil {
		return ""
	}
	if ref := strings.TrimSpace(t.TenantID); ref != "" {
		return ref
	}
	return strings.TrimSpace(t.ID)
}

func (t *ActiveTenant) Marshal() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", errors.Wrapf(err, "[ActiveTenant] marshal")
	}
	return string(data), nil
}

// Parse decodes a persisted tenant record.
func Parse(raw string) (*ActiveTenant, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.ErrNoActiveTenant
	}
	var t ActiveTenant
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptRecord, "[tenants.Parse] %v", err)
	}
	return &t, nil
}
