// Package b2 is the client for the bucket provider's HTTP API: account
// authorization, file-name listing, and file download.
package b2

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
	"sync"
	"time"
)

const (
	// maxFileCount is the bulk cap for a single listing call. Listing is
	// never paginated past this.
	maxFileCount = 10000

	// delimiter groups deeper keys into synthetic folder entries.
	delimiter = "/"
)

// Kind discriminates synthetic folder entries from stored files.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// RawEntry is one entry of a listing response. UploadedAt (epoch
// milliseconds) and SizeBytes are only populated for file entries.
type RawEntry struct {
	Name       string `json:"name"`
	Kind       Kind   `json:"kind"`
	UploadedAt int64  `json:"uploadedAt,omitempty"`
	SizeBytes  int64  `json:"sizeBytes,omitempty"`
}

// Session is the result of account authorization: where to call, where
// files are served from, and the bearer token for both.
type Session struct {
	APIURL      string `json:"apiUrl"`
	DownloadURL string `json:"downloadUrl"`
	Token       string `json:"authorizationToken"`
}

// APIError is a non-success response from the provider. The status is
// forwarded untouched to the error page.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("b2: upstream status %d: %s", e.Status, e.Body)
}

// FileReader is an open download stream plus the headers worth forwarding.
type FileReader struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// Config identifies the account and bucket the client operates on.
type Config struct {
	AccountHost string // authorization endpoint, e.g. https://api.backblazeb2.com
	KeyID       string
	AppKey      string
	BucketID    string
	BucketName  string
}

// Client calls the provider API. It caches the authorized session and
// re-authorizes once when a call comes back 401 (expired token).
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu      sync.Mutex
	session *Session
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Authorize returns the cached session, calling b2_authorize_account when
// there is none.
func (c *Client) Authorize(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return c.session, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.AccountHost+"/b2api/v2/b2_authorize_account", nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.AppKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authorize account: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Body: "malformed authorize response: " + err.Error()}
	}

	c.session = &session
	return &session, nil
}

// drop forgets a session so the next call re-authorizes. No-op if another
// goroutine already replaced it.
func (c *Client) drop(session *Session) {
	c.mu.Lock()
	if c.session == session {
		c.session = nil
	}
	c.mu.Unlock()
}

// ListFileNames issues a single delimiter-grouped listing query for the
// given prefix. The provider groups deeper nesting into folder entries
// instead of returning every descendant.
func (c *Client) ListFileNames(ctx context.Context, prefix string) ([]RawEntry, error) {
	var entries []RawEntry
	err := c.withSession(ctx, func(session *Session) error {
		var err error
		entries, err = c.listFileNames(ctx, session, prefix)
		return err
	})
	return entries, err
}

func (c *Client) listFileNames(ctx context.Context, session *Session, prefix string) ([]RawEntry, error) {
	body, err := json.Marshal(listRequest{
		BucketID:     c.cfg.BucketID,
		MaxFileCount: maxFileCount,
		Prefix:       prefix,
		Delimiter:    delimiter,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		session.APIURL+"/b2api/v2/b2_list_file_names", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", session.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list file names: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Body: "malformed listing response: " + err.Error()}
	}
	return out.Files, nil
}

// DownloadFile opens a download stream for the named file from the
// content-serving host. The caller owns the returned body.
func (c *Client) DownloadFile(ctx context.Context, name string) (*FileReader, error) {
	var file *FileReader
	err := c.withSession(ctx, func(session *Session) error {
		var err error
		file, err = c.downloadFile(ctx, session, name)
		return err
	})
	return file, err
}

func (c *Client) downloadFile(ctx context.Context, session *Session, name string) (*FileReader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		session.DownloadURL+"/file/"+EscapePath(c.cfg.BucketName)+"/"+EscapePath(name), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", session.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		return nil, newAPIError(resp)
	}

	return &FileReader{
		Body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

// withSession runs call with the current session, re-authorizing exactly
// once when the provider rejects the token.
func (c *Client) withSession(ctx context.Context, call func(*Session) error) error {
	for attempt := 0; ; attempt++ {
		session, err := c.Authorize(ctx)
		if err != nil {
			return err
		}

		err = call(session)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized && attempt == 0 {
			c.drop(session)
			continue
		}
		return err
	}
}

type listRequest struct {
	BucketID     string `json:"bucketId"`
	MaxFileCount int    `json:"maxFileCount"`
	Prefix       string `json:"prefix"`
	Delimiter    string `json:"delimiter"`
}

type listResponse struct {
	Files []RawEntry `json:"files"`
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{Status: resp.StatusCode, Body: string(body)}
}

// EscapePath percent-escapes each segment of a slash-separated key,
// leaving the separators intact.
func EscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
