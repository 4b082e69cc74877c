package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/strumind/console/internal/client/models"
)

// Login exchanges credentials for a session token. Rejected credentials
// surface as common.ErrUnauthorized; the global 401 hook does not fire for
// this endpoint because no bearer token is attached.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp models.TokenResponse
	if err := c.doForm(ctx, "/api/auth/token", form, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// CurrentUser resolves the profile behind the current session token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
