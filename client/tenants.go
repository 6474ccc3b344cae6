package client

import (
	"context"
	"net/url"

	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/rayaboutique242-create/raya-console/tenants"
)

// MyTenants lists the tenant memberships of the current user.
func (c *Client) MyTenants(ctx context.Context) ([]tenants.ActiveTenant, error) {
	res, err := c.Get(ctx, RouteMyTenants)
	if err != nil {
		return nil, err
	}
	if res.IsEmpty() {
		return nil, nil
	}
	var memberships []tenants.ActiveTenant
	if err := res.Decode(&memberships); err != nil {
		return nil, errors.Wrapf(err, "[MyTenants]")
	}
	return memberships, nil
}

// SelectTenant makes tenant the scope of every following request.
func (c *Client) SelectTenant(tenant *tenants.ActiveTenant) error {
	if tenant.Reference() == "" {
		return errors.Wrapf(errors.ErrInvalidRequest, "[SelectTenant] tenant has no identifier")
	}
	return c.session.SetActiveTenant(tenant)
}

// CurrentTenant returns the selected tenant, or nil.
func (c *Client) CurrentTenant() *tenants.ActiveTenant {
	return c.session.ActiveTenant()
}

func (c *Client) CreateTenant(ctx context.Context, tenant any) (*Response, error) {
	return c.Post(ctx, RouteTenants, tenant)
}

func (c *Client) TenantSettings(ctx context.Context) (*Response, error) {
	return c.Get(ctx, RouteTenantCurrentSettings)
}

func (c *Client) UpdateTenantSettings(ctx context.Context, settings any) (*Response, error) {
	return c.Patch(ctx, RouteTenantCurrentSettings, settings)
}

func (c *Client) GenerateInviteCode(ctx context.Context) (*Response, error) {
	return c.Post(ctx, RouteInvitationsGenerate, nil)
}

func (c *Client) CreateInvitation(ctx context.Context, invitation any) (*Response, error) {
	return c.Post(ctx, RouteInvitations, invitation)
}

// Invitations lists invitations, restricted to tenantID when it is set.
func (c *Client) Invitations(ctx context.Context, tenantID string) (*Response, error) {
	path := RouteInvitations
	if tenantID != "" {
		path += "?" + url.Values{"tenantId": {tenantID}}.Encode()
	}
	return c.Get(ctx, path)
}

func (c *Client) ValidateInvitation(ctx context.Context, code string) (*Response, error) {
	return c.Get(ctx, RouteInvitationsValidate+"/"+url.PathEscape(code))
}
