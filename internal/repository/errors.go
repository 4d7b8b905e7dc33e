package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// translate maps gorm and driver errors onto errcodes sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errcodes.ErrNoRecordFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errcodes.ErrContextCancelled
	case errors.Is(err, gorm.ErrDuplicatedKey), isDuplicateMessage(err):
		return fmt.Errorf("%w: %s", errcodes.ErrDuplicateRecord, err.Error())
	case errcodes.KindOf(err) != errcodes.KindInternal:
		return err
	default:
		return fmt.Errorf("%w: %w", errcodes.ErrInternal, err)
	}
}

func isDuplicateMessage(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
