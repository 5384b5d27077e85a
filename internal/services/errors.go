package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hosthub/pkg/utils"
)

// storageError folds raw gorm/driver failures into the API error
// taxonomy. onDuplicate names the sentinel for unique-key violations,
// which differ per entity (slug vs username). Connection-level failures
// (refused dials, broken pool connections, expired deadlines) map to
// ErrDatabaseUnavailable so reads can degrade instead of erroring.
func storageError(err error, onDuplicate error) error {
	var netErr net.Error
	var connectErr *pgconn.ConnectError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return onDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return utils.ErrValidation
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, gorm.ErrInvalidDB),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.As(err, &connectErr),
		errors.As(err, &netErr):
		return utils.ErrDatabaseUnavailable
	default:
		return utils.ErrDatabaseError
	}
}
