package yadisk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Base URL for the Yandex Disk API - made variable for testing
var diskBaseURL = "https://cloud-api.yandex.net/v1/disk"

// APIError is an upstream Yandex Disk API failure.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("yandex disk %s failed with status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("yandex disk %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Client handles interaction with the Yandex Disk REST API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Yandex Disk client authenticated with an OAuth token.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: diskBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yandex disk %s request failed: %w", endpoint, err)
	}
	return resp, nil
}

func apiError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// EnsureFolder probes for the folder at path and creates it when the probe
// reports not-found. Folder absence is normal control flow, not an error.
func (c *Client) EnsureFolder(ctx context.Context, path string) error {
	params := url.Values{}
	params.Set("path", path)

	resp, err := c.do(ctx, "GET", "/resources", params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Fall through to create.
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return apiError("resources", resp)
	}

	createResp, err := c.do(ctx, "PUT", "/resources", params)
	if err != nil {
		return err
	}
	defer createResp.Body.Close()
	if createResp.StatusCode < 200 || createResp.StatusCode >= 300 {
		return apiError("resources", createResp)
	}
	return nil
}

// UploadByURL asks Yandex Disk to fetch sourceURL directly into path, with
// redirect following disabled on the provider side. The fetch itself runs
// asynchronously on the provider; a 2xx acceptance is success and the result
// is not polled.
func (c *Client) UploadByURL(ctx context.Context, path, sourceURL string) error {
	params := url.Values{}
	params.Set("path", path)
	params.Set("url", sourceURL)
	params.Set("disable_redirects", "true")

	resp, err := c.do(ctx, "POST", "/resources/upload", params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError("resources/upload", resp)
	}
	return nil
}
