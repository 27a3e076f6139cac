package surveymonkey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestAuthCodeURL(t *testing.T) {
	tests := []struct {
		name        string
		clientID    string
		redirectURI string
	}{
		{
			name:        "simple values",
			clientID:    "my-client-id",
			redirectURI: "https://example.com/callback",
		},
		{
			name:        "values needing escaping",
			clientID:    "client id+special",
			redirectURI: "https://example.com/callback?next=/home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.clientID, "secret", tt.redirectURI, zerolog.Nop())
			require.NoError(t, err)

			authURL := client.AuthCodeURL()

			parsed, err := url.Parse(authURL)
			require.NoError(t, err)
			assert.Equal(t, "/oauth/authorize", parsed.Path)

			query := parsed.Query()
			assert.Equal(t, tt.clientID, query.Get("client_id"))
			assert.Equal(t, tt.redirectURI, query.Get("redirect_uri"))
			assert.Equal(t, "code", query.Get("response_type"))
		})
	}
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "abc123", r.PostForm.Get("code"))
		assert.Equal(t, "test-client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "https://example.com/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "granted-token",
			"token_type":   "bearer",
		})
	}))
	defer server.Close()

	client, err := New("test-client-id", "test-secret", "https://example.com/callback",
		zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	token, err := client.ExchangeCode(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "granted-token", token.AccessToken)

	// The exchange does not store the token.
	assert.Empty(t, client.accessToken)
}

func TestExchangeCodeErrors(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		client, err := New("id", "secret", "", zerolog.Nop())
		require.NoError(t, err)

		_, err = client.ExchangeCode(context.Background(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "authorization code is required")
	})

	t.Run("non-2xx token response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
		}))
		defer server.Close()

		client, err := New("id", "secret", "", zerolog.Nop(), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.ExchangeCode(context.Background(), "expired")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token exchange failed")
	})
}

func TestSetAccessToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	client, err := New("id", "secret", "", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	tests := []string{"first-token", "second-token", "token.with/odd_chars-123"}
	for _, token := range tests {
		client.SetAccessToken(token)
		_, err = client.GetMe(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+token, gotAuth)
	}
}

func TestSetToken(t *testing.T) {
	client, err := New("id", "secret", "", zerolog.Nop())
	require.NoError(t, err)

	client.SetToken(&oauth2.Token{AccessToken: "from-oauth"})
	assert.Equal(t, "from-oauth", client.accessToken)

	// A nil token leaves the stored token untouched.
	client.SetToken(nil)
	assert.Equal(t, "from-oauth", client.accessToken)
}
