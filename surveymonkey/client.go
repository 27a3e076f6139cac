package surveymonkey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the SurveyMonkey API host.
	DefaultBaseURL = "https://api.surveymonkey.com"

	apiVersion    = "/v3"
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"

	defaultTimeout = 30 * time.Second
)

// Client is a SurveyMonkey v3 API client.
//
// A Client is constructed once with the app credentials and may receive an
// access token later, after the OAuth exchange. It is not safe to call
// SetAccessToken concurrently with in-flight requests.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	redirectURI  string
	accessToken  string
	userAgent    string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// New creates a new SurveyMonkey client.
func New(clientID, clientSecret, redirectURI string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("surveymonkey client ID is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:      strings.TrimRight(options.baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		accessToken:  options.accessToken,
		userAgent:    options.userAgent,
		httpClient:   httpClient,
		logger:       logger,
	}, nil
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an authenticated API request and returns the raw response body.
// A 204 response yields a nil body. Non-2xx responses are surfaced as errors,
// mapped through the SurveyMonkey error code table when the body carries one.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	requestURL := c.baseURL + apiVersion + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Making SurveyMonkey API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, parseAPIError(resp.StatusCode, raw)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	return raw, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	raw, err := c.do(ctx, http.MethodPost, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) patch(ctx context.Context, endpoint string, payload, out any) error {
	raw, err := c.do(ctx, http.MethodPatch, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

func decode(raw []byte, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
