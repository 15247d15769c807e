// Package library provides a client for the music library backend.
package library

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrLibraryUnavailable is returned when the server reports its library
	// directory as missing.
	ErrLibraryUnavailable = errors.WithHint(
		errors.New("library directory unavailable"),
		"check the server's music directory",
	)
	// ErrTrackNotFound is returned when the server has no such file.
	ErrTrackNotFound = errors.New("track not found")
)

const (
	listPath = "/library/list"
	playPath = "/library/play/"

	// DefaultTimeout bounds listing requests.
	DefaultTimeout = 10 * time.Second
)

// StatusError is returned for unexpected HTTP status codes.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status: " + e.Status
}

// Listing is the server's view of the library.
type Listing struct {
	LibraryDir string   `json:"library_dir"`
	Files      []string `json:"files"`
}

// Client is a library backend client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	streams    *http.Client
}

// New creates a client for the backend at baseURL.
// timeout bounds listing requests; track streams are only bounded by their context.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		streams:    &http.Client{},
	}
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the full library listing.
func (c *Client) List(ctx context.Context) (*Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrLibraryUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var listing Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if listing.Files == nil {
		listing.Files = []string{}
	}

	return &listing, nil
}

// StreamURL returns the URL streaming the given library file.
func (c *Client) StreamURL(track string) string {
	return c.baseURL + playPath + url.PathEscape(track)
}

// Open starts streaming a track. The caller must close the returned body.
func (c *Client) Open(ctx context.Context, track string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.StreamURL(track), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	resp, err := c.streams.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http request")
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, errors.Wrapf(ErrTrackNotFound, "%s", track)
	default:
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
}
