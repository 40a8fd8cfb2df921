package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// NetClient implements Client on the standard net/http stack. It replaces
// the external HTTP client this project vendored away: one GET verb,
// whole-body reads, no retries, no status interpretation.
type NetClient struct {
	client *http.Client
}

// NewNetClient creates a new NetClient with the specified timeout.
func NewNetClient(timeout time.Duration) *NetClient {
	return &NetClient{client: &http.Client{Timeout: timeout}}
}

// NewNetClientFrom wraps a caller-supplied http.Client, for custom
// transports or instrumented clients in tests.
func NewNetClientFrom(c *http.Client) *NetClient {
	if c == nil {
		c = http.DefaultClient
	}
	return &NetClient{client: c}
}

// Get performs an HTTP GET request with the specified context, URL, and headers.
// The response body is fully read and closed before Get returns.
func (n *NetClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &netResponse{
		body:        body,
		statusCode:  resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
	}, nil
}

// netResponse carries the fully-read body of a completed request.
type netResponse struct {
	body        []byte
	statusCode  int
	contentType string
}

func (r *netResponse) Body() []byte    { return r.body }
func (r *netResponse) StatusCode() int { return r.statusCode }

// Text decodes the body using the charset from the Content-Type header,
// falling back to UTF-8 when the response does not declare one.
func (r *netResponse) Text() (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(r.body), r.contentType)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(decoded), nil
}
