package apperror

import "net/http"

// Kind discriminates error categories beyond the HTTP status code, since
// several categories share a status (e.g. profile_required and forbidden).
type Kind string

const (
	KindBadRequest           Kind = "bad_request"
	KindValidation           Kind = "validation"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindProfileRequired      Kind = "profile_required"
	KindNotFound             Kind = "not_found"
	KindDuplicateApplication Kind = "duplicate_application"
	KindConflict             Kind = "conflict"
	KindStorage              Kind = "storage"
	KindInternal             Kind = "internal"
)

type AppError struct {
	Code    int         `json:"code"`
	Kind    Kind        `json:"kind"`
	Message string      `json:"message"`
	Fields  interface{} `json:"fields,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

// Validation carries field-level details so the caller can re-display the form.
func Validation(message string, fields interface{}) *AppError {
	e := New(http.StatusBadRequest, KindValidation, message, nil)
	e.Fields = fields
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

// ProfileRequired signals that the acting account lacks the profile kind the
// operation needs, steering the caller toward profile creation.
func ProfileRequired(message string) *AppError {
	return New(http.StatusForbidden, KindProfileRequired, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// DuplicateApplication is the uniqueness violation on (job seeker, vacancy).
func DuplicateApplication(message string) *AppError {
	return New(http.StatusConflict, KindDuplicateApplication, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

// Storage wraps persistence or file I/O failures. Fatal to the current
// request; nothing retries.
func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, KindStorage, "Storage failure", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	if e, ok := err.(*AppError); ok {
		return e.Kind == kind
	}
	return false
}
