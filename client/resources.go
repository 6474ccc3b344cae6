package client

import (
	"context"
	"net/url"

	"github.com/rayaboutique242-create/raya-console/oauthmodel"
)

// Resource is a collection endpoint with the usual list/get/create/update/delete calls.
// Payloads and results are passed through untouched.
type Resource struct {
	client *Client
	path   string
}

func (c *Client) Resource(path string) *Resource {
	return &Resource{client: c, path: path}
}

func (c *Client) Products() *Resource   { return c.Resource(RouteProducts) }
func (c *Client) Orders() *Resource     { return c.Resource(RouteOrders) }
func (c *Client) Customers() *Resource  { return c.Resource(RouteCustomers) }
func (c *Client) Users() *Resource      { return c.Resource(RouteUsers) }
func (c *Client) Categories() *Resource { return c.Resource(RouteCategories) }

func (r *Resource) List(ctx context.Context, query url.Values) (*Response, error) {
	return r.client.Get(ctx, withQuery(r.path, query))
}

func (r *Resource) Get(ctx context.Context, id string) (*Response, error) {
	return r.client.Get(ctx, r.item(id))
}

func (r *Resource) Create(ctx context.Context, body any) (*Response, error) {
	return r.client.Post(ctx, r.path, body)
}

func (r *Resource) Update(ctx context.Context, id string, body any) (*Response, error) {
	return r.client.Patch(ctx, r.item(id), body)
}

func (r *Resource) Delete(ctx context.Context, id string) (*Response, error) {
	return r.client.Delete(ctx, r.item(id))
}

func (r *Resource) item(id string, segments ...string) string {
	path := r.path + "/" + url.PathEscape(id)
	for _, s := range segments {
		path += "/" + s
	}
	return path
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (*Response, error) {
	return c.Patch(ctx, c.Orders().item(orderID, "status"), oauthmodel.StatusUpdate{Status: status})
}

// AdjustStock posts a stock movement for one product. Stock rules are enforced server-side.
func (c *Client) AdjustStock(ctx context.Context, productID string, adjustment any) (*Response, error) {
	return c.Patch(ctx, c.Products().item(productID, "stock", "adjust"), adjustment)
}

func (c *Client) UpdateUserRole(ctx context.Context, userID, role string) (*Response, error) {
	return c.Patch(ctx, c.Users().item(userID, "role"), oauthmodel.RoleUpdate{Role: role})
}

func (c *Client) DeactivateUser(ctx context.Context, userID string) (*Response, error) {
	return c.Patch(ctx, c.Users().item(userID, "deactivate"), nil)
}

func (c *Client) StockMovements(ctx context.Context, query url.Values) (*Response, error) {
	return c.Get(ctx, withQuery(RouteInventoryMovements, query))
}

// ReportsDashboard fetches the report summary for period (day, week, month, year).
func (c *Client) ReportsDashboard(ctx context.Context, period string) (*Response, error) {
	if period == "" {
		period = "month"
	}
	return c.Get(ctx, withQuery(RouteReportsDashboard, url.Values{"period": {period}}))
}

func (c *Client) DashboardStats(ctx context.Context) (*Response, error) {
	return c.Get(ctx, RouteAnalyticsDashboard)
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
