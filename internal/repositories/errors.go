package repositories

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Failure kinds surfaced by every repository. Callers can tell a malformed
// call from a genuine miss from a storage fault, even though the HTTP layer
// currently collapses the latter two into the same 404.
var (
	ErrMissingInput = errors.New("missing required input")
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("record already exists")
)

// storageError logs a storage-layer fault once and wraps it for the caller.
func storageError(logger *zap.Logger, op string, err error) error {
	if logger != nil {
		logger.Error("storage operation failed", zap.String("op", op), zap.Error(err))
	}
	return fmt.Errorf("%s: %w", op, err)
}
