// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package transport is the thin HTTP adapter between the domain services and
the dictionary service.

It issues logical operations described by {method, path template, query,
optional JSON body} and classifies the outcome:

  - 2xx: the JSON body is decoded into the caller's value.
  - 4xx: a [*StatusError] carrying the status code and the message of the
    service's error payload (empty when there was none). Translating it into a domain error is the job
    of the svcerr package, because the meaning of a status depends on the
    sub-API.
  - 5xx, network failures, cancellation and timeouts: an
    UNEXPECTED_SERVICE_ERROR [apperr.AppError] wrapping the cause.

The client holds no per-call state and is safe for concurrent use.
*/
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/ctxutil"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/config"
)

// Opinionated defaults for socket-level retries when enabled.
const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// Request describes one logical call to the dictionary service.
type Request struct {
	Method string
	// Path is relative to the versioned API root and may contain
	// "{name}" placeholders resolved from PathParams.
	Path       string
	PathParams map[string]string
	Query      url.Values
	// Body is encoded as JSON when non-nil.
	Body any
}

// StatusError is the structured error payload of a 4xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary service responded %d: %s", e.StatusCode, e.Message)
}

// errorPayload is the JSON body the service sends with 4xx responses.
type errorPayload struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client performs HTTP calls against the dictionary service.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New builds a [Client] from the given configuration.
//
// # Parameters
//   - cfg: Client configuration (base URL, timeout, retries, rate limit).
//   - logger: Structured logger for request events; nil uses slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("transport: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL()).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		SetHeader(constants.HeaderContentType, constants.MIMEApplicationJSON).
		SetHeader(constants.HeaderAccept, constants.MIMEApplicationJSON).
		SetHeader(constants.HeaderUserAgent, constants.AppName+"/"+constants.AppVersion).
		SetLogger(restyLogger{logger: logger}).
		SetDebug(cfg.Debug)

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	logger.Info("dictionary client configured",
		slog.String("base_url", cfg.BaseURL()),
		slog.Duration("timeout", cfg.Timeout),
		slog.Int("retry_count", cfg.RetryCount),
	)

	return &Client{http: httpClient, limiter: limiter, logger: logger}, nil
}

// # Verbs

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, pathParams map[string]string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, PathParams: pathParams, Query: query}, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Query: query}, nil)
}

// # Execution

// Do executes req and decodes a successful JSON response into out.
// out may be nil when the response body is irrelevant.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	logger := ctxutil.GetLogger(ctx, c.logger)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperr.UnexpectedServiceError("dictionary request rate limited", 0, err)
		}
	}

	requestID := ctxutil.GetRequestID(ctx)
	if requestID == "" {
		requestID = newRequestID()
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeader(constants.HeaderXRequestID, requestID)

	if len(req.PathParams) > 0 {
		r.SetPathParams(req.PathParams)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		logger.WarnContext(ctx, "dictionary_request_failed",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return apperr.UnexpectedServiceError("dictionary request failed", 0, err)
	}

	status := resp.StatusCode()
	logger.DebugContext(ctx, "dictionary_request",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.String("request_id", requestID),
		slog.Int("status", status),
		slog.Duration("duration", resp.Time()),
	)

	switch {
	case status >= http.StatusInternalServerError:
		logger.WarnContext(ctx, "dictionary_server_error",
			slog.Int("status", status),
			slog.String("path", req.Path),
			slog.String("request_id", requestID),
		)
		message := errorMessage(resp)
		if message == "" {
			message = http.StatusText(status)
		}
		return apperr.UnexpectedServiceError(message, status, nil)

	case status >= http.StatusBadRequest:
		return &StatusError{StatusCode: status, Message: errorMessage(resp)}

	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return apperr.UnexpectedServiceError(fmt.Sprintf("unexpected status %d", status), status, nil)
	}

	body := resp.Body()
	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperr.UnexpectedServiceError("failed to decode dictionary response", status, err)
	}

	return nil
}

// errorMessage extracts the message of an error payload, falling back to a
// non-JSON body. It is empty when the service sent neither.
func errorMessage(resp *resty.Response) string {
	var payload errorPayload
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	if raw := resp.String(); raw != "" && !json.Valid(resp.Body()) {
		return raw
	}

	return ""
}

// newRequestID generates a time-ordered correlation id.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// restyLogger routes resty's internal logging through slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}
