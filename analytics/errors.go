package analytics

import (
	"errors"
	"fmt"
)

var (
	// ErrDataAccess matches every store failure returned by a report.
	ErrDataAccess = errors.New("data access error")
	// ErrDriverNotFound is returned by ResolveDriver for an unknown ref or code.
	ErrDriverNotFound = errors.New("driver not found")
)

// QueryError wraps a failed report query.
type QueryError struct {
	Report string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Report, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataAccess) hold for every QueryError.
func (e *QueryError) Is(target error) bool {
	return target == ErrDataAccess
}
