package vk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const apiVersion = "5.131"

var (
	// Base URL for the VK API - made variable for testing
	apiBaseURL = "https://api.vk.com/method"

	// ErrUserNotFound is returned when a user lookup resolves to an empty
	// result list.
	ErrUserNotFound = errors.New("user not found")
)

// APIError is an upstream VK API failure: a non-success HTTP status or an
// error object in the response body.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vk %s failed with status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("vk %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Photo is one photo selected for backup: its like count, upload time (unix
// seconds) and the URL of the rendition matching the configured size tag.
type Photo struct {
	Likes int
	Date  int64
	URL   string
}

// Client handles interaction with the VK API.
type Client struct {
	token      string
	sizeTag    string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a VK API client. sizeTag selects the photo rendition
// (e.g. "z" for the largest); a size variant matches when its type contains
// the tag as a substring.
func NewClient(token, sizeTag string) *Client {
	return &Client{
		token:   token,
		sizeTag: sizeTag,
		baseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get performs a GET against a VK API method with the shared auth parameters
// attached, and decodes the body into out. VK reports its own errors in a
// 200 body, so both the HTTP status and the error envelope are checked.
func (c *Client) get(ctx context.Context, method string, params url.Values, out any) error {
	params.Set("access_token", c.token)
	params.Set("v", apiVersion)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/"+method+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vk %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: method, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var envelope struct {
		Error *struct {
			ErrorCode int    `json:"error_code"`
			ErrorMsg  string `json:"error_msg"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return &APIError{
			Endpoint:   method,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("error %d: %s", envelope.Error.ErrorCode, envelope.Error.ErrorMsg),
		}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", method, err)
		}
	}
	return nil
}

// UserLabel resolves a user id to a display-name-keyed map {"First Last": id}.
func (c *Client) UserLabel(ctx context.Context, userID string) (map[string]int64, error) {
	params := url.Values{}
	params.Set("user_ids", userID)

	var result struct {
		Response []struct {
			ID        int64  `json:"id"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		} `json:"response"`
	}
	if err := c.get(ctx, "users.get", params, &result); err != nil {
		return nil, err
	}
	if len(result.Response) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	u := result.Response[0]
	return map[string]int64{u.FirstName + " " + u.LastName: u.ID}, nil
}

// Status returns the user's current status text, empty if none is set.
func (c *Client) Status(ctx context.Context, userID string) (string, error) {
	params := url.Values{}
	params.Set("user_ids", userID)

	var result struct {
		Response struct {
			Text string `json:"text"`
		} `json:"response"`
	}
	if err := c.get(ctx, "status.get", params, &result); err != nil {
		return "", err
	}
	return result.Response.Text, nil
}

// SetStatus sets the user's status text.
func (c *Client) SetStatus(ctx context.Context, userID, text string) error {
	params := url.Values{}
	params.Set("user_ids", userID)
	params.Set("text", text)
	return c.get(ctx, "status.set", params, nil)
}

// ReplaceStatus reads the current status, performs a literal substring
// replacement, and writes it back. A no-op if target is absent.
func (c *Client) ReplaceStatus(ctx context.Context, userID, target, replacement string) error {
	status, err := c.Status(ctx, userID)
	if err != nil {
		return err
	}
	return c.SetStatus(ctx, userID, strings.ReplaceAll(status, target, replacement))
}

// ListProfilePhotos fetches up to count photos from the named album
// ("profile", "wall", or any VK album id), extended with like counts and size
// variants. Each photo contributes the first size variant whose type matches
// the configured tag; photos with no matching variant are skipped.
func (c *Client) ListProfilePhotos(ctx context.Context, ownerID string, count int, albumID string) ([]Photo, error) {
	params := url.Values{}
	params.Set("owner_id", ownerID)
	params.Set("album_id", albumID)
	params.Set("extended", "1")
	params.Set("photo_sizes", "1")
	params.Set("count", strconv.Itoa(count))

	var result struct {
		Response struct {
			Items []struct {
				Date  int64 `json:"date"`
				Likes struct {
					Count int `json:"count"`
				} `json:"likes"`
				Sizes []struct {
					Type string `json:"type"`
					URL  string `json:"url"`
				} `json:"sizes"`
			} `json:"items"`
		} `json:"response"`
	}
	if err := c.get(ctx, "photos.get", params, &result); err != nil {
		return nil, err
	}

	var photos []Photo
	for _, item := range result.Response.Items {
		for _, size := range item.Sizes {
			if strings.Contains(size.Type, c.sizeTag) {
				photos = append(photos, Photo{
					Likes: item.Likes.Count,
					Date:  item.Date,
					URL:   size.URL,
				})
				break
			}
		}
	}
	return photos, nil
}
