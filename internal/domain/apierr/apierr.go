// Package apierr defines the single typed error union returned by every
// backend API call. Callers branch on the error kind instead of probing
// response shapes.
package apierr

import (
	"net/http"

	"github.com/nauteik/soa-project-sub001/internal/errors"
)

// Kind classifies a failed backend interaction.
type Kind string

const (
	// KindValidation marks input rejected before or by the backend (4xx with
	// field details, or local form validation).
	KindValidation Kind = "VALIDATION"

	// KindAuth marks a missing, expired or rejected credential (401).
	// Cart and session code reacts to this kind with a forced sign-out.
	KindAuth Kind = "AUTH"

	// KindRequest marks any other 4xx/5xx answered by the backend.
	KindRequest Kind = "REQUEST"

	// KindNetwork marks connectivity failures where no response arrived.
	KindNetwork Kind = "NETWORK"

	// KindUnknown marks everything else.
	KindUnknown Kind = "UNKNOWN"
)

// Fallback user-facing messages, used when the backend payload carries none.
const (
	msgRequest    = "Đã xảy ra lỗi, vui lòng thử lại sau"
	msgAuth       = "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại"
	msgNetwork    = "Không thể kết nối đến máy chủ, vui lòng kiểm tra kết nối mạng"
	msgValidation = "Dữ liệu không hợp lệ"
)

// Error is the uniform error value for all API-client and service failures.
type Error struct {
	kind    Kind
	status  int               // HTTP status, 0 when no response arrived
	code    string            // backend business code, e.g. "PRODUCT_NOT_FOUND"
	message string            // user-facing message
	fields  map[string]string // per-field validation messages
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Kind returns the error classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Status returns the HTTP status of the backend response, or 0.
func (e *Error) Status() int {
	return e.status
}

// Code returns the backend business code, or "".
func (e *Error) Code() string {
	return e.code
}

// Message returns the user-facing message.
func (e *Error) Message() string {
	return e.message
}

// Fields returns per-field validation messages, nil unless KindValidation.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Validation builds a validation error with per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{
		kind:    KindValidation,
		status:  http.StatusBadRequest,
		message: msgValidation,
		fields:  fields,
	}
}

// Unauthenticated builds an auth error for a locally detected missing or
// expired credential, before any network call.
func Unauthenticated(message string) *Error {
	if message == "" {
		message = msgAuth
	}

	return &Error{kind: KindAuth, status: http.StatusUnauthorized, message: message}
}

// FromResponse maps a non-2xx backend response to the union. The backend
// message is kept when present, otherwise a localized fallback is used.
func FromResponse(status int, code, message string) *Error {
	kind := KindRequest
	fallback := msgRequest
	if status == http.StatusUnauthorized {
		kind = KindAuth
		fallback = msgAuth
	}
	if message == "" {
		message = fallback
	}

	return &Error{kind: kind, status: status, code: code, message: message}
}

// Network wraps a transport failure where no response object exists.
func Network(cause error) *Error {
	return &Error{kind: KindNetwork, message: msgNetwork, cause: cause}
}

// Unknown wraps an unexpected failure.
func Unknown(cause error) *Error {
	return &Error{kind: KindUnknown, message: msgRequest, cause: cause}
}

// KindOf extracts the kind from an error chain, KindUnknown when the chain
// carries no *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind()
	}

	return KindUnknown
}

// IsAuth reports whether the chain contains an auth-kind error.
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

// MessageOf returns the user-facing message from the chain, falling back to
// the generic request message.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}

	return msgRequest
}
