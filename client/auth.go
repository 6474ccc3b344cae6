package client

import (
	"context"

	"github.com/rayaboutique242-create/raya-console/oauthmodel"
	"github.com/rs/zerolog/log"
)

// Login authenticates and stores the returned tokens. A 401 here means bad
// credentials and is returned without a refresh attempt.
func (c *Client) Login(ctx context.Context, req oauthmodel.LoginRequest) (*Response, error) {
	return c.authenticate(ctx, RouteAuthLogin, req)
}

// Register creates an account and stores the returned tokens.
func (c *Client) Register(ctx context.Context, req oauthmodel.RegisterRequest) (*Response, error) {
	return c.authenticate(ctx, RouteAuthRegister, req)
}

// Bootstrap creates the first tenant and its administrator, then stores the returned tokens.
func (c *Client) Bootstrap(ctx context.Context, req oauthmodel.BootstrapRequest) (*Response, error) {
	return c.authenticate(ctx, RouteAuthBootstrap, req)
}

// Refresh forces a token exchange. On failure the session is cleared and
// errors.ErrUnauthorized is returned.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refresh(ctx, c.session.AccessToken())
}

// Logout asks the server to drop its refresh cookie, then clears the local
// session whatever the outcome of that call.
func (c *Client) Logout(ctx context.Context) {
	if _, err := c.Post(ctx, RouteAuthLogout, struct{}{}); err != nil {
		log.Debug().Err(err).Msg("server logout failed, clearing local session anyway")
	}
	c.session.Clear()
}

// Me fetches the current user's profile and caches it with the session.
func (c *Client) Me(ctx context.Context) (*Response, error) {
	res, err := c.Get(ctx, RouteAuthMe)
	if err != nil {
		return nil, err
	}
	if res.Kind == KindJSON {
		c.session.SetProfile(res.JSON)
	}
	return res, nil
}

func (c *Client) VerifyActivationCode(ctx context.Context, code string) (*Response, error) {
	return c.Post(ctx, RouteAuthActivate, oauthmodel.ActivationRequest{Code: code})
}

func (c *Client) UpdateProfile(ctx context.Context, profile any) (*Response, error) {
	return c.Patch(ctx, RouteAuthProfile, profile)
}

func (c *Client) ChangePassword(ctx context.Context, req oauthmodel.ChangePasswordRequest) (*Response, error) {
	return c.Post(ctx, RouteAuthChangePassword, req)
}

func (c *Client) authenticate(ctx context.Context, route string, body any) (*Response, error) {
	res, err := c.Post(ctx, route, body)
	if err != nil {
		return nil, err
	}
	c.storeTokens(res)
	return res, nil
}

// storeTokens keeps whichever of accessToken and refreshToken the response carries.
func (c *Client) storeTokens(res *Response) {
	if res.Kind != KindJSON {
		return
	}
	var pair oauthmodel.TokenPair
	if err := res.Decode(&pair); err != nil {
		log.Debug().Err(err).Msg("response carries no token pair")
		return
	}
	if pair.AccessToken != "" {
		c.session.SetAccessToken(pair.AccessToken)
	}
	if pair.RefreshToken != "" {
		c.session.SetRefreshToken(pair.RefreshToken)
	}
}
