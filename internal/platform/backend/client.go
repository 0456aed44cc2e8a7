// Package backend is the typed client for the nerine backend API. Every
// operation funnels its response through the structural error discrimination
// in common before a domain value is produced: a backend-reported failure is
// returned as *common.APIError, while network and decode faults stay
// ordinary errors. Callers must not conflate the two.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"nerine_frontend/internal/common"
)

type Client struct {
	http    *http.Client
	baseURL string
}

// New builds a client rooted at baseURL, typically config.AppConfig.APIBase.
// No retries and no explicit timeout: failure handling is the caller's.
func New(baseURL string) *Client {
	return &Client{
		http:    &http.Client{},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type requestOptions struct {
	body    any
	headers http.Header
}

// request issues one HTTP call. GET never serializes a body; mutating
// methods require one, get it JSON-encoded and a JSON content type. Caller
// headers merge in afterwards, caller winning on conflict.
func (c *Client) request(ctx context.Context, method, path string, opts requestOptions) (*http.Response, error) {
	var reqBody io.Reader
	if method != http.MethodGet {
		if opts.body == nil {
			return nil, fmt.Errorf("%s %s: missing request body", method, path)
		}
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range opts.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return c.http.Do(req)
}

// sessionCookie carries a team session token. An empty token means an
// anonymous request; public endpoints must answer those too.
func sessionCookie(token string) http.Header {
	return cookieHeader("token", token)
}

// adminCookie carries an admin credential for admin-scoped calls.
func adminCookie(token string) http.Header {
	return cookieHeader("admin_token", token)
}

func cookieHeader(name, token string) http.Header {
	if token == "" {
		return nil
	}
	h := http.Header{}
	h.Set("Cookie", name+"="+token)
	return h
}

// decode reads the whole response and runs the error discrimination before
// unmarshalling a domain value.
func decode[T any](res *http.Response) (T, error) {
	var zero T
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return zero, fmt.Errorf("read response body: %w", err)
	}
	if common.IsErrorPayload(body) {
		apiErr := &common.APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil {
			return zero, fmt.Errorf("decode error response: %w", err)
		}
		return zero, apiErr
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}
