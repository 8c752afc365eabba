package conekta

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a failed operation. The set is closed: every failure a
// context returns carries exactly one of these.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindService    Kind = "service"
	KindTransport  Kind = "transport"
	KindDecode     Kind = "decode"
)

// Kind-only sentinels for errors.Is matching:
//
//	if errors.Is(err, conekta.ErrNotFound) { ... }
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrService    = &Error{Kind: KindService}
	ErrTransport  = &Error{Kind: KindTransport}
	ErrDecode     = &Error{Kind: KindDecode}
)

// Error is the typed failure returned by every operation. StatusCode is
// zero for failures that never got an HTTP response (transport, local
// guards). Code and Message come from the remote error body when present,
// RequestID from the response headers.
type Error struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
	RequestID  string

	cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("conekta: %s (status %d): %s", e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("conekta: %s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches by kind so the sentinels above work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewTransportError wraps a network-level failure (timeout, connection
// refused, cancelled context). The cause stays reachable through Unwrap.
func NewTransportError(cause error) *Error {
	return &Error{Kind: KindTransport, cause: cause}
}

// NewDecodeError wraps a response body that could not be parsed into the
// expected shape.
func NewDecodeError(cause error, requestID string) *Error {
	return &Error{Kind: KindDecode, RequestID: requestID, cause: cause}
}

// NewValidationError reports a payload rejected by a local null/empty
// guard before any request was made.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewEncodeError reports a payload that could not be serialized. Like the
// guards above it is a local validation failure, no request was made.
func NewEncodeError(cause error) *Error {
	return &Error{Kind: KindValidation, Message: "unencodable payload", cause: cause}
}

// apiErrorBody is the remote error envelope. The API nests the useful
// message/code inside details; top-level fields cover older responses.
type apiErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code"`
	LogID   string `json:"log_id"`
	Details []struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"details"`
}

// Translate maps a non-2xx response to a typed Error. The body is parsed
// best-effort: an unparseable error body still yields the right kind.
func Translate(statusCode int, body []byte, requestID string) *Error {
	e := &Error{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		RequestID:  requestID,
	}
	var remote apiErrorBody
	if err := json.Unmarshal(body, &remote); err == nil {
		e.Code = remote.Code
		e.Message = remote.Message
		if len(remote.Details) > 0 {
			if e.Message == "" {
				e.Message = remote.Details[0].Message
			}
			if e.Code == "" {
				e.Code = remote.Details[0].Code
			}
		}
		if e.RequestID == "" {
			e.RequestID = remote.LogID
		}
	}
	return e
}

func kindForStatus(statusCode int) Kind {
	switch {
	case statusCode == 401 || statusCode == 403:
		return KindAuth
	case statusCode == 404:
		return KindNotFound
	case statusCode == 409:
		return KindConflict
	case statusCode >= 400 && statusCode < 500:
		// 400 and 422 are both parameter rejections; remaining 4xx are
		// payloads the server refused.
		return KindValidation
	default:
		return KindService
	}
}
