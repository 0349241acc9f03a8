package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://wind-bow.gomix.me/twitch-api"
	DefaultTimeout = 5 * time.Second

	categoryUsers   = "users"
	categoryStreams = "streams"

	maxBodyBytes = 1 << 20

	channelBaseURL = "https://www.twitch.tv/"
)

// ErrNotFound is returned when the API reports an unknown channel.
var ErrNotFound = errors.New("channel not found")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Client talks to the Twitch proxy API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL. An empty baseURL uses the public
// proxy; a non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchUser loads the profile for name.
func (c *Client) FetchUser(ctx context.Context, name string) (User, error) {
	var user User
	if err := c.get(ctx, categoryUsers, name, &user); err != nil {
		return User{}, err
	}
	if user.Error != "" {
		return User{}, fmt.Errorf("user %s: %w (%s)", name, ErrNotFound, apiMessage(user.Error, user.Message))
	}
	return user, nil
}

// FetchStream loads the live status for name.
func (c *Client) FetchStream(ctx context.Context, name string) (StreamStatus, error) {
	var status StreamStatus
	if err := c.get(ctx, categoryStreams, name, &status); err != nil {
		return StreamStatus{}, err
	}
	if status.Error != "" {
		return StreamStatus{}, fmt.Errorf("stream %s: %w (%s)", name, ErrNotFound, apiMessage(status.Error, status.Message))
	}
	return status, nil
}

// ChannelURL returns the public channel page for name.
func ChannelURL(name string) string {
	return channelBaseURL + url.PathEscape(name)
}

// URL returns the endpoint for a category/name pair.
func (c *Client) URL(category, name string) string {
	return c.baseURL + "/" + category + "/" + url.PathEscape(name)
}

func (c *Client) get(ctx context.Context, category, name string, out interface{}) error {
	endpoint := c.URL(category, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s: %w", endpoint, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", endpoint, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, URL: endpoint}
	}
	if err := json.Unmarshal(StripJSONP(body), out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// StripJSONP removes a `callback(...)` wrapper if present. The client never
// asks for JSONP; this is for proxies that wrap every response regardless.
func StripJSONP(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] == '{' || trimmed[0] == '[' {
		return trimmed
	}
	open := bytes.IndexByte(trimmed, '(')
	if open <= 0 || !isCallbackName(trimmed[:open]) {
		return trimmed
	}
	inner := bytes.TrimSuffix(trimmed[open+1:], []byte(";"))
	inner = bytes.TrimSpace(inner)
	inner = bytes.TrimSuffix(inner, []byte(")"))
	return bytes.TrimSpace(inner)
}

func isCallbackName(b []byte) bool {
	for _, r := range string(bytes.TrimSpace(b)) {
		switch {
		case r == '_' || r == '$' || r == '.':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func apiMessage(errText, message string) string {
	if strings.TrimSpace(message) != "" {
		return errText + ": " + message
	}
	return errText
}
