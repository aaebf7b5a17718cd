package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"repo-fetch/model"
)

const (
	defaultAPIBaseURL   = "https://api.github.com"
	defaultRawBaseURL   = "https://raw.githubusercontent.com"
	defaultMediaBaseURL = "https://media.githubusercontent.com/media"

	acceptJSON = "application/vnd.github+json"
	acceptRaw  = "application/vnd.github.v3.raw"
)

var (
	ErrMissingToken    = errors.New("missing github token")
	ErrUnexpectedShape = errors.New("unexpected contents response shape")
)

// Entry is one item from the contents API: a file or a directory.
type Entry struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	SHA         string `json:"sha,omitempty"`
	DownloadURL string `json:"download_url"`
}

// Listing is the decoded contents response for a path. Exactly one of
// File or Entries is set: File when the path resolved to a single file,
// Entries when it resolved to a directory.
type Listing struct {
	File    *Entry
	Entries []Entry
}

// Client talks to the GitHub contents and raw-download endpoints.
// Base URLs are overridable so tests can point at a local server.
type Client struct {
	APIBaseURL   string
	RawBaseURL   string
	MediaBaseURL string
	Token        string
	HTTPClient   *http.Client

	// OnFile, when set, is invoked after each file written during a
	// directory download.
	OnFile func(path string, size int64)
}

// NewClient returns a Client authenticated with the given token. The
// token may be empty for single public-file downloads; recursive
// directory downloads require it.
func NewClient(token string) *Client {
	return &Client{
		APIBaseURL:   defaultAPIBaseURL,
		RawBaseURL:   defaultRawBaseURL,
		MediaBaseURL: defaultMediaBaseURL,
		Token:        token,
		HTTPClient:   http.DefaultClient,
	}
}

// Contents fetches the metadata for dir and decodes it into the
// file-or-directory Listing variant.
func (c *Client) Contents(ctx context.Context, coords model.RepoCoordinates, dir string) (Listing, error) {
	endpoint := fmt.Sprintf(
		"%s/repos/%s/%s/contents/%s?ref=%s",
		c.APIBaseURL,
		coords.Owner,
		coords.Repository,
		dir,
		coords.Ref,
	)

	body, err := c.get(ctx, endpoint, acceptJSON)
	if err != nil {
		return Listing{}, err
	}

	return parseListing(body)
}

// parseListing is the single place the contents API's "object or
// array" ambiguity is resolved. A JSON array is a directory listing; a
// JSON object tagged type "file" is a single file. Anything else is an
// ErrUnexpectedShape.
func parseListing(data []byte) (Listing, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Listing{}, fmt.Errorf("%w: empty response", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		var entries []Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return Listing{}, fmt.Errorf("decoding directory listing: %w", err)
		}
		return Listing{Entries: entries}, nil
	case '{':
		var entry Entry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return Listing{}, fmt.Errorf("decoding file entry: %w", err)
		}
		if entry.Type != "file" {
			return Listing{}, fmt.Errorf("%w: object with type %q", ErrUnexpectedShape, entry.Type)
		}
		return Listing{File: &entry}, nil
	default:
		return Listing{}, fmt.Errorf("%w: not a JSON object or array", ErrUnexpectedShape)
	}
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}

	req.Header.Set("Accept", accept)
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: HTTP %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	return body, nil
}
