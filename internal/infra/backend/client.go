package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/pkg/errs"

	"github.com/cenkalti/backoff/v5"
)

const maxBodyBytes = 5 << 20

// AuthFailureHandler is told about every 401/403 the backend returns.
type AuthFailureHandler func(ctx context.Context, status int)

// Client talks to the Zavvi REST API. It attaches the stored bearer token,
// bounds every call with a timeout, and retries transient failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cfg        config.BackendConfig
	store      storage.Store
	logger     *slog.Logger

	mu            sync.RWMutex
	onAuthFailure AuthFailureHandler
}

func NewClient(cfg config.Config, store storage.Store, logger *slog.Logger) *Client {
	return &Client{
		// per-call timeouts are applied through the request context
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		cfg:        cfg.Backend,
		store:      store,
		logger:     logger,
	}
}

// SetAuthFailureHandler registers the session's 401/403 hook. The session store
// depends on the client, so the hook is attached after both are built.
func (c *Client) SetAuthFailureHandler(h AuthFailureHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAuthFailure = h
}

// policy is the timeout and retry budget of one endpoint.
type policy struct {
	timeout time.Duration
	retries uint
}

func (c *Client) short(retries uint) policy {
	return policy{timeout: c.cfg.ShortTimeout, retries: retries}
}

func (c *Client) standard(retries uint) policy {
	return policy{timeout: c.cfg.DefaultTimeout, retries: retries}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	policy policy
}

// do sends req and returns the raw response body of a 2xx answer.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	var payload []byte
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, infra.NewError(infra.KindValidation, 0, "Invalid request", errs.Wrap(err, "marshal request body"))
		}
		payload = b
	}

	interval := c.cfg.RetryInterval
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}

	attempt := 0
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		attempt++
		b, err := c.send(ctx, req, payload)
		if err == nil {
			return b, nil
		}
		if !infra.IsKind(err, infra.KindTransientNetwork) {
			return nil, backoff.Permanent(err)
		}
		c.logger.Warn("Backend call failed, retrying",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		return nil, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(interval)),
		backoff.WithMaxTries(req.policy.retries+1),
	)
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if !infra.IsKind(err, infra.KindTransientNetwork) {
				err = infra.NewError(infra.KindTransientNetwork, 0, "Request timed out. Please try again.", err)
			}
		}
		if infra.IsKind(err, infra.KindAuthExpired) {
			c.notifyAuthFailure(ctx, err)
		}
		return nil, err
	}
	return body, nil
}

func (c *Client) send(ctx context.Context, req request, payload []byte) ([]byte, error) {
	timeout := req.policy.timeout
	if timeout <= 0 {
		timeout = c.cfg.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, infra.NewError(infra.KindValidation, 0, "Invalid request", errs.Wrap(err, "build request"))
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		msg := "Network error. Please check your connection."
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "Request timed out. Please try again."
		}
		return nil, infra.NewError(infra.KindTransientNetwork, 0, msg, errs.Wrapf(err, "%s %s", req.method, req.path))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, infra.NewError(infra.KindTransientNetwork, resp.StatusCode, "Network error. Please check your connection.", errs.Wrap(err, "read response"))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromBody(resp.StatusCode, body)
	}
	return body, nil
}

// token reads the bearer token; an unreadable store means an anonymous call.
func (c *Client) token(ctx context.Context) string {
	token, ok, err := c.store.Get(ctx, storage.KeyToken)
	if err != nil {
		c.logger.Warn("Failed to read token from storage", slog.String("error", err.Error()))
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

func (c *Client) notifyAuthFailure(ctx context.Context, err error) {
	c.mu.RLock()
	h := c.onAuthFailure
	c.mu.RUnlock()
	if h == nil {
		return
	}
	var e infra.Error
	status := http.StatusUnauthorized
	if errors.As(err, &e) && e.Status != 0 {
		status = e.Status
	}
	h(ctx, status)
}

// getJSON fetches path and decodes the unwrapped payload into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, p policy, out any) error {
	body, err := c.do(ctx, request{method: http.MethodGet, path: path, query: query, policy: p})
	if err != nil {
		return err
	}
	payload, err := Unwrap(body)
	if err != nil {
		return err
	}
	return decode(payload, out)
}

// getList fetches path and decodes the extracted list into out.
func (c *Client) getList(ctx context.Context, path string, query url.Values, p policy, out any) error {
	body, err := c.do(ctx, request{method: http.MethodGet, path: path, query: query, policy: p})
	if err != nil {
		return err
	}
	list, err := UnwrapList(body)
	if err != nil {
		return err
	}
	return decode(list, out)
}

func decode(payload json.RawMessage, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return infra.NewError(infra.KindUpstream, 0, "Malformed response from server", errs.Wrap(err, "decode payload"))
	}
	return nil
}
