package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go-jewel-storefront/internal/pkg/apperror"

	"go.uber.org/zap"
)

const (
	DevelopmentBaseURL = "http://localhost:5000/api"
	StagingBaseURL     = "https://staging-api.vardhamanjewellers.in/api"
	ProductionBaseURL  = "https://api.vardhamanjewellers.in/api"

	DefaultTimeout = 30 * time.Second
	DefaultMaxBody = 16 << 20

	genericMessage = "Something went wrong. Please try again"
)

// ResolveBaseURL picks the backend for env. A non-empty override always wins.
func ResolveBaseURL(env, override string) string {
	if o := strings.TrimSpace(override); o != "" {
		return strings.TrimRight(o, "/")
	}
	switch strings.ToLower(env) {
	case "production", "prod":
		return ProductionBaseURL
	case "staging":
		return StagingBaseURL
	default:
		return DevelopmentBaseURL
	}
}

// MediaBase is the API base without its trailing /api segment.
func MediaBase(apiBase string) string {
	base := strings.TrimRight(apiBase, "/")
	return strings.TrimSuffix(base, "/api")
}

// TokenSource yields the bearer token for the browser behind ctx ("" for none).
type TokenSource func(ctx context.Context) string

// UnauthorizedHandler runs once per upstream 401, before the error is returned.
type UnauthorizedHandler func(ctx context.Context)

// Options configures a Client. Response bodies above MaxBodyBytes fail as upstream errors.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	HTTPClient     *http.Client
	Tokens         TokenSource
	OnUnauthorized UnauthorizedHandler
	Logger         *zap.Logger
	MaxBodyBytes   int64
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	logger         *zap.Logger
	maxBody        int64
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBody
	}
	if opts.Tokens == nil {
		opts.Tokens = func(context.Context) string { return "" }
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           opts.HTTPClient,
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
		logger:         opts.Logger.Named("apiclient"),
		maxBody:        opts.MaxBodyBytes,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Envelope is the backend's usual {success, data, message} shape. A missing
// success flag (including an empty body) counts as success.
type Envelope[T any] struct {
	Success *bool  `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func (e Envelope[T]) OK() bool {
	return e.Success == nil || *e.Success
}

// Err turns a 2xx response with success=false into an upstream error.
func (e Envelope[T]) Err() error {
	if e.OK() {
		return nil
	}
	return upstream(http.StatusOK, e.Message, nil)
}

// Error is the cause carried by every upstream failure.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// StatusOf returns the backend's HTTP status behind err, or 0.
func StatusOf(err error) int {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Status
	}
	return 0
}

func upstream(status int, message string, cause error) error {
	if strings.TrimSpace(message) == "" {
		message = genericMessage
	}
	httpStatus := http.StatusBadGateway
	if status >= 400 && status < 500 {
		httpStatus = status
	}
	if cause == nil {
		cause = &Error{Status: status, Message: message}
	}
	return apperror.Wrap(cause, apperror.CodeUpstream, message, httpStatus)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends a JSON request and decodes a 2xx body into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	raw, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("decode upstream body", zap.String("path", path), zap.Error(err))
		return upstream(http.StatusBadGateway, "", err)
	}
	return nil
}

// Upload posts a single file as multipart/form-data under field.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return upstream(http.StatusBadGateway, "", err)
	}
	return nil
}

// Fetch returns a raw body and its content type, for images and exports.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	var contentType string
	raw, err := c.sendWith(ctx, req, func(res *http.Response) {
		contentType = res.Header.Get("Content-Type")
	})
	return raw, contentType, err
}

func (c *Client) send(ctx context.Context, req *http.Request) ([]byte, error) {
	return c.sendWith(ctx, req, nil)
}

func (c *Client) sendWith(ctx context.Context, req *http.Request, inspect func(*http.Response)) ([]byte, error) {
	if token := c.tokens(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream unreachable",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, upstream(http.StatusBadGateway, "", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, c.maxBody+1))
	if err != nil {
		return nil, upstream(http.StatusBadGateway, "", err)
	}
	if int64(len(raw)) > c.maxBody {
		c.logger.Warn("upstream body too large",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int64("limit", c.maxBody),
		)
		return nil, upstream(http.StatusBadGateway, "", fmt.Errorf("response body exceeds %d bytes", c.maxBody))
	}

	c.logger.Debug("upstream call",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", res.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if res.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return nil, apperror.ErrSessionExpired
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, upstream(res.StatusCode, messageOf(raw), nil)
	}
	if inspect != nil {
		inspect(res)
	}
	return raw, nil
}

// messageOf digs a human message out of an error body: "message", a string
// "error", or "error.message".
func messageOf(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	if len(body.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Error, &s); err == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
