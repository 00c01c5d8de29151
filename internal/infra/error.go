package infra

import (
	"context"
	"errors"
	"log/slog"

	"zavvi-web/internal/pkg/errs"
)

type ErrorKind string

// Error is what collaborators return; Kind is the client-side error taxonomy.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status, 0 for transport failures
	Code   string // backend error code when present
	msg    string
	err    error // wrapped low-level error
	// Flags carries boolean markers from the error body (isGoldenCoupon, alreadyRedeemed, ...).
	Flags map[string]bool
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// Message is the user-facing text without the kind prefix.
func (e Error) Message() string {
	return e.msg
}

func (e Error) Flag(name string) bool {
	return e.Flags[name]
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	level := slog.LevelError
	if kind == KindDegradation || kind == KindDomainRejection || kind == KindValidation {
		level = slog.LevelWarn
	}
	slogger.Log(context.Background(), level, "Collaborator error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the taxonomy kind of err, or KindUpstream when err is not an Error.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// MessageOf returns the Error message or fallback.
func MessageOf(err error, fallback string) string {
	var e Error
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}
	return fallback
}

// Client error taxonomy
const (
	KindTransientNetwork ErrorKind = "TRANSIENT_NETWORK"
	KindAuthExpired      ErrorKind = "AUTH_EXPIRED"
	KindValidation       ErrorKind = "VALIDATION"
	KindDomainRejection  ErrorKind = "DOMAIN_REJECTION"
	KindDegradation      ErrorKind = "DEGRADATION"
	KindUpstream         ErrorKind = "UPSTREAM"
)

// NewError builds an Error without logging; used at the network boundary.
func NewError(kind ErrorKind, status int, msg string, err error) Error {
	return Error{Kind: kind, Status: status, msg: msg, err: err}
}
