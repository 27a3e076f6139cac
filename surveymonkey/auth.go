package surveymonkey

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// oauthConfig builds the OAuth2 authorization-code configuration for this app.
// SurveyMonkey expects the client credentials in the POST body, not in a basic
// auth header.
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.baseURL + authorizePath,
			TokenURL:  c.baseURL + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthCodeURL returns the URL the user must visit to authorize the app. The
// URL carries the client_id, redirect_uri and response_type=code parameters.
// No network call is made.
func (c *Client) AuthCodeURL() string {
	return c.oauthConfig().AuthCodeURL("")
}

// ExchangeCode exchanges an authorization code for an access token. The token
// is returned to the caller and not stored; call SetAccessToken (or SetToken)
// to use it for subsequent requests.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, fmt.Errorf("authorization code is required")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	c.logger.Debug().Msg("Exchanged authorization code for access token")
	return token, nil
}

// SetAccessToken stores the token used for the Authorization header on
// subsequent requests. No validation is performed.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// SetToken stores the access token from an OAuth2 token response.
func (c *Client) SetToken(token *oauth2.Token) {
	if token != nil {
		c.accessToken = token.AccessToken
	}
}
