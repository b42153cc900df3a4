package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a service failure for the transport layer.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindDuplicateKey
	KindReferenceNotFound
	KindInvalidCredential
	KindFileParse
	KindInvalidInput
)

// Error is a classified failure with a message fit for the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "not found"}
	ErrDuplicateKey      = &Error{Kind: KindDuplicateKey, Message: "already exists"}
	ErrReferenceNotFound = &Error{Kind: KindReferenceNotFound, Message: "referenced record not found"}
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential, Message: "invalid credential"}
	ErrFileParse         = &Error{Kind: KindFileParse, Message: "could not parse file"}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput, Message: "invalid input"}
)

func newError(kind Kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the kind of a classified error, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// storeKind maps constraint violations raised by the database to error kinds.
// GORM translates them when TranslateError is on; raw pgx errors are checked too.
func storeKind(err error) Kind {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindReferenceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindDuplicateKey
		case "23503":
			return KindReferenceNotFound
		}
	}
	return 0
}
