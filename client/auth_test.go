package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rayaboutique242-create/raya-console/client"
	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/rayaboutique242-create/raya-console/oauthmodel"
	"github.com/rayaboutique242-create/raya-console/sessions"
	"github.com/rayaboutique242-create/raya-console/storage"
	"github.com/rayaboutique242-create/raya-console/tenants"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "awa.diop@raya.sn"
	testPassword = "password123"
)

func TestLoginStoresTokens(t *testing.T) {
	f := setupTestFixture(t)
	f.handle("/auth/login", respondJSON(http.StatusOK, map[string]any{
		"accessToken":  "T1",
		"refreshToken": "R1",
		"user":         map[string]string{"email": testEmail},
	}))

	res, err := f.client.Login(context.Background(), oauthmodel.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.Equal(t, client.KindJSON, res.Kind)
	require.Equal(t, sessions.Session{AccessToken: "T1", RefreshToken: "R1"}, f.session.Session())

	var sent oauthmodel.LoginRequest
	require.NoError(t, json.Unmarshal([]byte(f.requestsTo("/auth/login")[0].Body), &sent))
	require.Equal(t, testEmail, sent.Email)

	reloaded, err := sessions.New(f.store)
	require.NoError(t, err)
	require.Equal(t, "T1", reloaded.AccessToken())
}

func TestLoginBadCredentials(t *testing.T) {
	f := setupTestFixture(t)
	f.handle("/auth/login", respondJSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}))

	_, err := f.client.Login(context.Background(), oauthmodel.LoginRequest{Email: testEmail, Password: "nope"})
	require.EqualError(t, err, "Invalid credentials")
	require.False(t, errors.Is(err, errors.ErrUnauthorized))
	require.Empty(t, f.requestsTo("/auth/refresh"))
	require.False(t, f.session.Session().Authenticated())
}

func TestLoginCookieOnly(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetRefreshToken("R0")
	f.handle("/auth/login", respondJSON(http.StatusOK, map[string]string{"accessToken": "T1"}))

	_, err := f.client.Login(context.Background(), oauthmodel.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.Equal(t, sessions.Session{AccessToken: "T1", RefreshToken: "R0"}, f.session.Session())
}

func TestRegisterAndBootstrapStoreTokens(t *testing.T) {
	f := setupTestFixture(t)
	f.handle("/auth/register", respondJSON(http.StatusCreated, oauthmodel.TokenPair{AccessToken: "T-reg", RefreshToken: "R-reg"}))
	f.handle("/auth/bootstrap", respondJSON(http.StatusCreated, oauthmodel.TokenPair{AccessToken: "T-boot", RefreshToken: "R-boot"}))

	_, err := f.client.Register(context.Background(), oauthmodel.RegisterRequest{Email: testEmail, Password: testPassword, InvitationCode: "INV-42"})
	require.NoError(t, err)
	require.Equal(t, "T-reg", f.session.AccessToken())
	require.Contains(t, f.requestsTo("/auth/register")[0].Body, `"invitationCode":"INV-42"`)

	_, err = f.client.Bootstrap(context.Background(), oauthmodel.BootstrapRequest{
		ActivationCode: "ACT-1",
		TenantName:     "Raya Boutique",
		Email:          testEmail,
		Password:       testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, sessions.Session{AccessToken: "T-boot", RefreshToken: "R-boot"}, f.session.Session())
}

func TestLogout(t *testing.T) {
	t.Run("server accepts", func(t *testing.T) {
		f := setupTestFixture(t)
		f.session.SetAccessToken("T1")
		f.session.SetRefreshToken("R1")
		f.handle("/auth/logout", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

		f.client.Logout(context.Background())
		require.Len(t, f.requestsTo("/auth/logout"), 1)
		require.Equal(t, "{}", f.requestsTo("/auth/logout")[0].Body)
		require.Equal(t, sessions.Session{}, f.session.Session())
	})

	t.Run("server fails", func(t *testing.T) {
		f := setupTestFixture(t)
		f.session.SetAccessToken("T1")
		require.NoError(t, f.session.SetActiveTenant(&tenants.ActiveTenant{ID: "tenant-1"}))
		f.handle("/auth/logout", respondJSON(http.StatusInternalServerError, map[string]string{"message": "boom"}))

		f.client.Logout(context.Background())
		require.Equal(t, sessions.Session{}, f.session.Session())
		require.Empty(t, f.session.ActiveTenantID())
	})
}

func TestMeCachesProfile(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetAccessToken("T1")
	f.handle("/auth/me", bearerOnly("T1", map[string]string{"id": "u-1", "role": "pdg"}))

	res, err := f.client.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, client.KindJSON, res.Kind)
	require.JSONEq(t, `{"id":"u-1","role":"pdg"}`, string(f.session.Profile()))

	stored, ok, err := f.store.Get(storage.KeyUserProfile)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"id":"u-1","role":"pdg"}`, stored)
}

func TestAccountCalls(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetAccessToken("T1")
	f.handle("/auth/activate", respondJSON(http.StatusOK, map[string]bool{"valid": true}))
	f.handle("/auth/profile", respondJSON(http.StatusOK, map[string]string{"firstName": "Awa"}))
	f.handle("/auth/change-password", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	ctx := context.Background()

	_, err := f.client.VerifyActivationCode(ctx, "ACT-1")
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"ACT-1"}`, f.requestsTo("/auth/activate")[0].Body)

	_, err = f.client.UpdateProfile(ctx, map[string]string{"firstName": "Awa"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, f.requestsTo("/auth/profile")[0].Method)

	res, err := f.client.ChangePassword(ctx, oauthmodel.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"})
	require.NoError(t, err)
	require.True(t, res.IsEmpty())
}
