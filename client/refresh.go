package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/rayaboutique242-create/raya-console/oauthmodel"
	"github.com/rs/zerolog/log"
)

const refreshKey = "session-refresh"

// refresh renews the access token after rejectedToken was refused. Concurrent
// callers share a single in-flight exchange. If the session already holds a
// different token, another caller has refreshed it and nothing is sent.
func (c *Client) refresh(ctx context.Context, rejectedToken string) error {
	result := c.refreshGroup.DoChan(refreshKey, func() (any, error) {
		if current := c.session.AccessToken(); current != "" && current != rejectedToken {
			return nil, nil
		}
		return nil, c.refreshSession(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-result:
		return r.Err
	}
}

// refreshSession exchanges the refresh token. Any failure destroys the session.
func (c *Client) refreshSession(ctx context.Context) error {
	pair, err := c.exchangeRefreshToken(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session refresh failed, clearing session")
		c.session.Clear()
		return errors.ErrUnauthorized
	}

	if pair.AccessToken != "" {
		c.session.SetAccessToken(pair.AccessToken)
	}
	if pair.RefreshToken != "" {
		c.session.SetRefreshToken(pair.RefreshToken)
	}
	log.Debug().Msg("session refreshed")
	return nil
}

func (c *Client) exchangeRefreshToken(ctx context.Context) (*oauthmodel.TokenPair, error) {
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return nil, errors.ErrNoRefreshToken
	}

	body, err := json.Marshal(oauthmodel.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, errors.Wrapf(err, "encoding refresh request")
	}

	res, _, err := c.send(ctx, RouteAuthRefresh, Options{Method: http.MethodPost, Body: body}, false)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", errors.ErrRefreshFailed, res.Status)
	}

	var pair oauthmodel.TokenPair
	if err := json.NewDecoder(res.Body).Decode(&pair); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", errors.ErrRefreshFailed, err)
	}
	return &pair, nil
}
