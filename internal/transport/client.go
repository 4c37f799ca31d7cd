// Package transport provides the single configured HTTP sender shared by all
// gateways: fixed base origin, per-request timeout, bearer-token attachment
// and request/response hooks.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
)

// TokenSource yields the current auth token, or "" when not logged in.
// session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// RequestHook can mutate an outbound request before it is sent.
type RequestHook func(req *http.Request)

// ResponseHook observes a completed exchange. It runs for every response,
// including non-2xx ones.
type ResponseHook func(req *http.Request, resp *http.Response, took time.Duration)

// Reply is the decoded wire response handed to gateways. A non-2xx status is
// not an error at this layer; only transport failures surface as errors.
type Reply struct {
	Status int
	Body   json.RawMessage
}

// Client is the single request sender for the backend REST API.
type Client struct {
	baseURL    string
	hc         *http.Client
	tokens     TokenSource
	log        logging.Logger
	reqHooks   []RequestHook
	respHooks  []ResponseHook
	maxBody    int64
}

const defaultMaxBody = 10 * 1024 * 1024 // 10 MiB

// NewClient builds a Client for the given origin. The trailing slash on
// baseURL, if any, is trimmed so path templates can always start with "/".
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
		maxBody: defaultMaxBody,
	}
	c.reqHooks = append(c.reqHooks, c.attachAuth, attachRequestID)
	c.respHooks = append(c.respHooks, c.logExchange)
	return c
}

// OnRequest registers an additional request hook.
func (c *Client) OnRequest(h RequestHook) { c.reqHooks = append(c.reqHooks, h) }

// OnResponse registers an additional response hook.
func (c *Client) OnResponse(h ResponseHook) { c.respHooks = append(c.respHooks, h) }

func (c *Client) attachAuth(req *http.Request) {
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func attachRequestID(req *http.Request) {
	req.Header.Set("X-Request-Id", uuid.NewString())
}

func (c *Client) logExchange(req *http.Request, resp *http.Response, took time.Duration) {
	if resp.StatusCode >= 400 {
		c.log.Warn(req.Context(), "backend request failed",
			"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "took", took)
		return
	}
	c.log.Debug(req.Context(), "backend request",
		"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "took", took)
}

// Do sends one JSON request. body may be nil; non-nil bodies are marshalled
// to JSON. The returned error covers transport failures only (dial, timeout,
// broken read); HTTP-level failures come back in Reply.Status.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Reply, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range c.reqHooks {
		h(req)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	for _, h := range c.respHooks {
		h(req, resp, time.Since(start))
	}

	return &Reply{Status: resp.StatusCode, Body: raw}, nil
}
