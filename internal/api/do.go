package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/metrics"
)

// RequestIDHeader carries a fresh id on every request.
const RequestIDHeader = "X-Request-ID"

// call is one backend round trip.
type call struct {
	method string
	path   string // relative to baseURL, may carry a query string
	body   any    // nil, *Multipart, or a JSON-encodable value
	out    any    // pointer to decode a 2xx body into; nil discards it
	// timeout replaces the client's default timeout when positive.
	timeout time.Duration
}

// send performs cl and decodes the response into a fresh T.
func send[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var out T
	cl.out = &out
	if err := c.do(ctx, cl); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return send[T](ctx, c, call{method: http.MethodGet, path: path})
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, call{method: http.MethodPost, path: path, body: body})
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, call{method: http.MethodPut, path: path, body: body})
}

func del[T any](ctx context.Context, c *Client, path string) (T, error) {
	return send[T](ctx, c, call{method: http.MethodDelete, path: path})
}

// do runs one request through the shared policy: rate limit, timeout, auth
// header, span, log line and metrics.
func (c *Client) do(ctx context.Context, cl call) (err error) {
	timeout := c.timeout
	if cl.timeout > 0 {
		timeout = cl.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	route := routeOf(cl.path)
	resource := resourceOf(cl.path)
	reqID := uuid.NewString()
	start := time.Now()
	status := 0

	ctx, span := c.tracer.Start(ctx, cl.method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", cl.method),
			attribute.String("http.route", route),
			attribute.String("request.id", reqID),
		))
	defer func() {
		outcome := outcomeOf(err)
		if status != 0 {
			span.SetAttributes(attribute.Int("http.status_code", status))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		elapsed := time.Since(start)
		c.metrics.Observe(resource, cl.method, outcome, elapsed)
		c.log.Debug("backend request",
			zap.String("method", cl.method),
			zap.String("path", route),
			zap.Int("status", status),
			zap.String("outcome", outcome),
			zap.Duration("duration", elapsed),
			zap.String("request_id", reqID),
		)
	}()

	fail := func(kind Kind, msg string, cause error) error {
		return &Error{Kind: kind, StatusCode: status, Message: msg, Method: cl.method, Path: route, Err: cause}
	}

	if c.limiter != nil {
		if werr := c.limiter.Wait(ctx); werr != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fail(contextKind(ctxErr), contextMessage(ctxErr), ctxErr)
			}
			return fail(KindRequest, werr.Error(), werr)
		}
	}

	body, contentType, berr := encodeBody(cl.body)
	if berr != nil {
		return fail(KindRequest, berr.Error(), berr)
	}

	req, rerr := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if rerr != nil {
		return fail(KindRequest, rerr.Error(), rerr)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	token, terr := c.session.AuthToken(ctx)
	if terr != nil {
		return fail(KindRequest, fmt.Sprintf("read session: %v", terr), terr)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, derr := c.http.Do(req)
	if derr != nil {
		kind, msg := classifyTransport(ctx, derr)
		return fail(kind, msg, derr)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, rerr := io.ReadAll(resp.Body)
	if rerr != nil {
		kind, msg := classifyTransport(ctx, rerr)
		return fail(kind, msg, rerr)
	}

	if status < 200 || status > 299 {
		if status == http.StatusUnauthorized && token != "" && c.clearOnUnauthorized {
			c.dropSession(ctx, route)
		}
		return fail(KindHTTP, errorMessage(status, resp.Status, data), nil)
	}

	if cl.out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if acceptsEmpty(cl.out) {
			return nil
		}
		return fail(KindDecode, "empty response body", nil)
	}
	if jerr := json.Unmarshal(data, cl.out); jerr != nil {
		return fail(KindDecode, jerr.Error(), jerr)
	}
	return nil
}

// dropSession clears the stored credentials after the backend rejected them.
func (c *Client) dropSession(ctx context.Context, route string) {
	if err := c.session.Clear(context.WithoutCancel(ctx)); err != nil {
		c.log.Warn("failed to clear session after 401", zap.String("path", route), zap.Error(err))
		return
	}
	c.log.Warn("backend rejected credentials, session cleared", zap.String("path", route))
}

func encodeBody(v any) (io.Reader, string, error) {
	if mp, ok := v.(*Multipart); ok {
		if mp == nil {
			return nil, "", errors.New("nil multipart body")
		}
		buf, ct, err := mp.encode()
		if err != nil {
			return nil, "", err
		}
		return buf, ct, nil
	}
	if v == nil {
		return http.NoBody, "application/json", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(b), "application/json", nil
}

func acceptsEmpty(out any) bool {
	switch out.(type) {
	case *struct{}, *json.RawMessage:
		return true
	}
	return false
}

func classifyTransport(ctx context.Context, err error) (Kind, string) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return contextKind(ctxErr), contextMessage(ctxErr)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout, contextMessage(context.DeadlineExceeded)
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled, contextMessage(context.Canceled)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout, contextMessage(context.DeadlineExceeded)
	}
	return KindTransport, err.Error()
}

func contextKind(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindCanceled
}

func contextMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return "request canceled"
}

func outcomeOf(err error) string {
	var apiErr *Error
	if err == nil {
		return metrics.OutcomeOK
	}
	if !errors.As(err, &apiErr) {
		return metrics.OutcomeTransport
	}
	switch apiErr.Kind {
	case KindRequest:
		return metrics.OutcomeRequest
	case KindHTTP:
		return metrics.OutcomeHTTPError
	case KindDecode:
		return metrics.OutcomeDecode
	case KindTimeout:
		return metrics.OutcomeTimeout
	case KindCanceled:
		return metrics.OutcomeCanceled
	}
	return metrics.OutcomeTransport
}

// routeOf strips the query and replaces numeric path segments with {id} so
// spans and logs group by endpoint.
func routeOf(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s != "" && strings.Trim(s, "0123456789") == "" {
			segs[i] = "{id}"
		}
	}
	return strings.Join(segs, "/")
}

// resourceOf is the metrics label of a path: the first segment after /api,
// or the first segment for root-level endpoints.
func resourceOf(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) > 1 && segs[0] == "api" {
		return segs[1]
	}
	if segs[0] == "" {
		return "root"
	}
	return segs[0]
}
