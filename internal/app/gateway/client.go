// internal/app/gateway/client.go

// Package gateway is the single HTTP doorway to the external
// labour-management backend. Every feature talks to the backend through a
// resource store built on this client; nothing else in the app issues HTTP
// requests. The client attaches default headers, carries the caller's bearer
// token from the request context, and translates the backend's
// session-expiry contract (401 or an `expired: true` body) into
// ErrSessionExpired so the handler layer can react uniformly.
package gateway

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// apiPrefix is prepended to every backend path.
const apiPrefix = "/api"

type tokenKey struct{}

// WithToken returns a context carrying the session's auth token. The session
// middleware sets this once per request; the client reads it back when
// building the Authorization header.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the auth token carried by ctx, if any.
func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Client issues requests against the backend API.
type Client struct {
	base  *url.URL
	media string
	http  *http.Client
	log   *zap.Logger
}

// New builds a Client for the given backend origin. mediaBase is the origin
// used to resolve relative media paths (photo uploads); when blank it
// defaults to baseURL.
func New(baseURL, mediaBase string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api_base_url must be absolute http(s), got %q", baseURL)
	}
	if mediaBase == "" {
		mediaBase = baseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base:  u,
		media: strings.TrimRight(mediaBase, "/"),
		http:  &http.Client{Timeout: timeout},
		log:   logger,
	}, nil
}

// expiryProbe is decoded from every successful JSON body to detect the
// in-band expiry flag before the caller sees the payload.
type expiryProbe struct {
	Expired bool `json:"expired"`
}

// GetJSON issues GET <base>/api/<path> and decodes the body into out.
// out may be nil when the caller only cares about success.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, "", out)
}

// PostJSON issues POST with a JSON body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	return c.doJSON(ctx, http.MethodPost, path, body, "application/json", out)
}

// Delete issues DELETE and decodes any response body into out (may be nil).
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, "", out)
}

// PostMultipart issues POST with a multipart form. fields are plain values;
// files maps field name to filename + content. Used only by attendance
// marking, which forwards the captured photo opaquely.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]FilePart, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	for name, f := range files {
		part, err := mw.CreateFormFile(name, f.Filename)
		if err != nil {
			return fmt.Errorf("create form file %s: %w", name, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return fmt.Errorf("copy form file %s: %w", name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, path, &buf, mw.FormDataContentType(), out)
}

// FilePart is a file forwarded inside a multipart request.
type FilePart struct {
	Filename string
	Reader   io.Reader
}

// Ping verifies the backend is reachable. Any HTTP response counts as alive;
// only transport failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: "GET /", Err: err}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// endpoint joins the API prefix and a caller path onto the base origin.
// The path may carry a query string; it must land in RawQuery, not be
// escaped into the path.
func (c *Client) endpoint(path string) (string, error) {
	rel, err := url.Parse(apiPrefix + path)
	if err != nil {
		return "", err
	}
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + rel.Path
	u.RawQuery = rel.RawQuery
	return u.String(), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	op := method + " " + path

	target, err := c.endpoint(path)
	if err != nil {
		return fmt.Errorf("build request %s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Op: op, Status: resp.StatusCode, Body: raw}
	}

	// A 2xx body can still carry the in-band expiry flag. Probe before
	// handing the payload to the caller.
	if len(raw) > 0 {
		var probe expiryProbe
		if json.Unmarshal(raw, &probe) == nil && probe.Expired {
			return ErrSessionExpired
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response for %s: %w", op, err)
		}
	}
	return nil
}
