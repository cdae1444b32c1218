package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/certification/pkg/config"
	"github.com/samandr77/microservices/certification/pkg/transport"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 1 << 10
)

// Client uploads objects to a bucket of an HTTP object store and returns their public URL.
// STORAGE_URL is the storage API root, e.g. https://project.supabase.co/storage/v1.
type Client struct {
	httpClient *http.Client
	baseURL    string
	bucket     string
}

func NewClient(cfg config.Storage) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewJWTRoundTripper(http.DefaultTransport, cfg.ServiceKey)

	retryClient.Logger = nil

	return &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		bucket:     cfg.Bucket,
	}
}

func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	objectPath := url.PathEscape(c.bucket) + "/" + escapeKey(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/object/"+objectPath, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	// Keys are unique per upload, so overwriting only happens when a retry repeats a stored attempt.
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("upload object: unexpected code %d: %s", resp.StatusCode, body)
	}

	return c.baseURL + "/object/public/" + objectPath, nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return strings.Join(parts, "/")
}
