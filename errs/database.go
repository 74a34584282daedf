package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrDatabaseTimeout    = errors.New("database timeout")
)

// NewDatabaseError classifies a storage failure so callers can report
// connectivity and timeout causes with a more specific message than a generic
// query failure.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case errors.Is(cause, context.DeadlineExceeded) || strings.Contains(errStr, "timeout"):
			return &ApiErr{
				StatusCode: http.StatusInternalServerError,
				err:        fmt.Errorf("%s: %w", details, ErrDatabaseTimeout),
				Cause:      cause,
			}
		case strings.Contains(errStr, "no such host") ||
			strings.Contains(errStr, "connection refused") ||
			strings.Contains(errStr, "connection reset"):
			return &ApiErr{
				StatusCode: http.StatusInternalServerError,
				err:        fmt.Errorf("%s: %w", details, ErrDatabaseConnection),
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s: %w", details, ErrDatabaseQuery),
		Cause:      cause,
	}
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

func IsDatabaseTimeoutError(err error) bool {
	return errors.Is(err, ErrDatabaseTimeout)
}
