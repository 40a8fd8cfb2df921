package httpclient

import (
	"context"
	"time"
)

// DefaultTimeout bounds requests made through the package-level Get helpers.
const DefaultTimeout = 30 * time.Second

var defaultClient Client = NewNetClient(DefaultTimeout)

// SetDefaultClient overrides the client used by Get and GetContext
// (e.g. for testing). Passing nil restores the built-in client.
func SetDefaultClient(c Client) {
	if c == nil {
		c = NewNetClient(DefaultTimeout)
	}
	defaultClient = c
}

// Get performs a single GET against url with the given headers (nil means
// none) and returns the response body decoded as text. Any transport
// failure, non-decodable body, or status of 400 or above is returned as an
// error; there is no retry and no partial result.
func Get(url string, headers map[string]string) (string, error) {
	return GetContext(context.Background(), url, headers)
}

// GetContext is Get with a caller-controlled context.
func GetContext(ctx context.Context, url string, headers map[string]string) (string, error) {
	resp, err := defaultClient.Get(ctx, url, headers)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() >= 400 {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}
	return resp.Text()
}
