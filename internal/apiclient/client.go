package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client executes requests against one backend service. Two instances
// exist in practice (auth/visits service and project service); their
// bearer tokens are kept in sync by the auth gateway on login/logout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration

	token string
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 15 * time.Second,
	}
}

// SetToken replaces the bearer token. Empty means unauthenticated.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	return c.token
}

// APIError wraps non-2xx responses with the raw response body.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed (%d): %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// FilePart is one file attachment for a multipart request.
type FilePart struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Get issues a GET with optional query params and decodes JSON into out.
func (c *Client) Get(ctx context.Context, path string, params map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, withQuery(path, params), "", nil, out)
}

// Post issues a JSON POST.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	return c.do(ctx, http.MethodPost, path, "application/json", &buf, out)
}

// Put issues a JSON PUT.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	return c.do(ctx, http.MethodPut, path, "application/json", &buf, out)
}

// Delete issues a DELETE with optional query params.
func (c *Client) Delete(ctx context.Context, path string, params map[string]string, out any) error {
	return c.do(ctx, http.MethodDelete, withQuery(path, params), "", nil, out)
}

// PostURLEncoded issues a POST with an application/x-www-form-urlencoded body.
func (c *Client) PostURLEncoded(ctx context.Context, path string, data map[string]string, out any) error {
	form := url.Values{}
	for k, v := range data {
		form.Set(k, v)
	}
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", body, out)
}

// PostForm issues a multipart/form-data POST with string fields plus
// optional file parts.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, mw.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	endpoint := strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Method: method, Path: path, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func withQuery(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + q.Encode()
}
