package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	// KindCompensationFailed marks a partially applied multi-store operation
	// whose rollback also failed. Never retried automatically.
	KindCompensationFailed
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindCompensationFailed:
		return "compensation_failed"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Error codes surfaced to clients. Also used as i18n message ids.
const (
	CodeServerNewer    = "server_newer"
	CodeBoxNotEmpty    = "box_not_empty"
	CodeBoxReferenced  = "box_referenced"
	CodeBoxExists      = "box_exists"
	CodeJobActive      = "job_active"
	CodeJobTerminal    = "job_terminal"
	CodeJobNotFailed   = "job_not_failed"
	CodeJobNotActive   = "job_not_active"
	CodeOrderBusy      = "order_busy"
	CodeKeyReused      = "idempotency_key_reused"
	CodeDuplicateJob   = "duplicate_job"
	CodeAlreadyExists  = "already_exists"
	CodeInvalidRequest = "invalid_request"
)

type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by kind and code, so sentinel-style checks work.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Code == "" || e.Code == t.Code)
}

func New(kind Kind, code, message string) *AppError {
	if code == "" {
		code = kind.String()
	}
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Wrap(err error, kind Kind, code, message string) *AppError {
	e := New(kind, code, message)
	e.Err = err
	return e
}

func Validation(message string) *AppError {
	return New(KindValidation, "", message)
}

func NotFound(what string) *AppError {
	return New(KindNotFound, "", what+" not found")
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, "", message)
}

func Conflict(code, message string) *AppError {
	return New(KindConflict, code, message)
}

func Internal(err error, message string) *AppError {
	return Wrap(err, KindInternal, "", message)
}

func CompensationFailed(err error, message string) *AppError {
	return Wrap(err, KindCompensationFailed, "", message)
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal for anything else.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// CodeOf returns the machine code of err, defaulting to "internal".
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return KindInternal.String()
}

// Ensure passes AppErrors through and wraps anything else as Internal.
func Ensure(err error, message string) error {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return err
	}
	return Internal(err, message)
}
