package memos

import (
	"bytes"
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

const defaultTimeout = 30 * time.Second

// ResourcePrefix starts every memo resource name.
const ResourcePrefix = "memos/"

// ErrMemoNotFound is returned when the API answers 404.
var ErrMemoNotFound = errors.New("memo not found")

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

// GetMemo fetches a single memo by its uid.
func (c *Client) GetMemo(ctx context.Context, uid string) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos/"+url.PathEscape(uid), nil, &memo); err != nil {
		return nil, fmt.Errorf("get memo %s: %w", uid, err)
	}
	return &memo, nil
}

// UpdateMemo patches the fields named in req.UpdateMask.
func (c *Client) UpdateMemo(ctx context.Context, uid string, req UpdateMemoRequest) (*Memo, error) {
	path := "/api/v1/memos/" + url.PathEscape(uid)
	if req.UpdateMask != "" {
		path += "?updateMask=" + url.QueryEscape(req.UpdateMask)
	}

	var memo Memo
	if err := c.do(ctx, http.MethodPatch, path, req, &memo); err != nil {
		return nil, fmt.Errorf("update memo %s: %w", uid, err)
	}
	return &memo, nil
}

// ListMemos returns one page of memos and the token of the next one.
func (c *Client) ListMemos(ctx context.Context, pageSize int, pageToken string) ([]Memo, string, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	var resp ListMemosResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos?"+q.Encode(), nil, &resp); err != nil {
		return nil, "", fmt.Errorf("list memos: %w", err)
	}
	return resp.Memos, resp.NextPageToken, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call memos API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrMemoNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("memos API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode memos response: %w", err)
	}
	return nil
}

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{uid}.
type UpdateMemoRequest struct {
	Content    string `json:"content"`
	UpdateMask string `json:"-"`
}

// ListMemosResponse is the body of GET /api/v1/memos.
type ListMemosResponse struct {
	Memos         []Memo `json:"memos"`
	NextPageToken string `json:"nextPageToken"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	UpdateTime string `json:"updateTime"`
}

// ID returns the uid, falling back to the "memos/{uid}" resource name.
func (m Memo) ID() string {
	if m.UID != "" {
		return m.UID
	}
	return strings.TrimPrefix(m.Name, ResourcePrefix)
}
