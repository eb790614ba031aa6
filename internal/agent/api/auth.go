// Методы клиента для token endpoint.
package api

import (
	"context"
	"net/url"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Token получает access token по email и паролю (grant_type=password).
func (c *Client) Token(ctx context.Context, email, password string) (sm.TokenResponse, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {email},
		"password":   {password},
	}
	var resp sm.TokenResponse
	err := c.PostForm(ctx, "/connect/token", form, &resp)
	return resp, err
}
