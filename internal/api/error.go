package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Kind classifies why a request failed.
type Kind int

const (
	// KindRequest means the request could not be built: the body did not
	// encode or the session could not be read.
	KindRequest Kind = iota + 1
	// KindTransport means no HTTP response was received.
	KindTransport
	// KindHTTP means the backend answered with a non-2xx status.
	KindHTTP
	// KindDecode means a 2xx body was not the expected JSON.
	KindDecode
	// KindTimeout means the request deadline passed.
	KindTimeout
	// KindCanceled means the caller canceled the context.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	}
	return "unknown"
}

// unknownError is the message used when a failure carries no text.
const unknownError = "Unknown error"

// Error is returned by every facade method on failure. Error() is the
// normalized, user-presentable message.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Method     string
	Path       string
	Err        error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return unknownError
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// KindHTTP *Error.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindHTTP {
		return apiErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err is an HTTP failure with the given status.
func IsStatus(err error, code int) bool {
	return StatusCode(err) == code
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// errorBody covers the error shapes the backend produces: FastAPI's
// {"detail": "..."}, its validation list {"detail": [{"msg": ...}]}, and a
// plain {"error": "..."}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  json.RawMessage `json:"error"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// errorMessage picks the message for a non-2xx response. statusLine is the
// response's status line, used for codes net/http has no text for.
func errorMessage(status int, statusLine string, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if s := rawString(eb.Detail); s != "" {
			return s
		}
		var issues []validationIssue
		if err := json.Unmarshal(eb.Detail, &issues); err == nil && len(issues) > 0 {
			msgs := make([]string, 0, len(issues))
			for _, is := range issues {
				if is.Msg != "" {
					msgs = append(msgs, is.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
		if s := rawString(eb.Error); s != "" {
			return s
		}
	}
	return fmt.Sprintf("HTTP %d: %s", status, reasonPhrase(status, statusLine))
}

func reasonPhrase(status int, statusLine string) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	if reason := strings.TrimSpace(strings.TrimPrefix(statusLine, strconv.Itoa(status))); reason != "" {
		return reason
	}
	return "Unknown error"
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
