package errcodes

import (
	"context"
	"errors"
)

// Kind classifies an error for callers that need to branch on it.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// Kind sentinels. Every specific error below wraps exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
	ErrInternal   = errors.New("internal error")
)

var (
	ErrNoRecordFound    = newError(ErrNotFound, "no record found")
	ErrRepoNotFound     = newError(ErrNotFound, "repository not found")
	ErrBranchNotFound   = newError(ErrNotFound, "branch not found")
	ErrCommitNotFound   = newError(ErrNotFound, "commit not found")
	ErrFileNotFound     = newError(ErrNotFound, "file not found")
	ErrBranchExists     = newError(ErrConflict, "branch already exists")
	ErrHeadMoved        = newError(ErrConflict, "branch head moved, reload and retry")
	ErrDuplicateRecord  = newError(ErrConflict, "duplicate record")
	ErrOwnerRequired    = newError(ErrValidation, "owner id is required")
	ErrNameRequired     = newError(ErrValidation, "repository name is required")
	ErrInvalidPath      = newError(ErrValidation, "invalid file path")
	ErrInvalidBranch    = newError(ErrValidation, "invalid branch name")
	ErrMessageRequired  = newError(ErrValidation, "commit message is required")
	ErrInvalidRequest   = newError(ErrValidation, "invalid request")
	ErrContextCancelled = newError(ErrInternal, "context cancelled")
)

type codeError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &codeError{kind: kind, msg: msg}
}

func (e *codeError) Error() string { return e.msg }

func (e *codeError) Unwrap() error { return e.kind }

// KindOf reports the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}

// FromContext maps a cancelled context to ErrContextCancelled.
func FromContext(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrContextCancelled
	}
	return nil
}
