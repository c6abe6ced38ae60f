package apperrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// ErrFiscalYearLocked indicates a write against a record dated in a closed fiscal year.
var ErrFiscalYearLocked = errors.New("fiscal year locked")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FiscalLockError is returned when a mutation targets a date inside a closed fiscal year.
type FiscalLockError struct {
	Year int
}

func (e *FiscalLockError) Error() string {
	return fmt.Sprintf("fiscal year %d is closed: records dated in %d cannot be created, edited or deleted", e.Year, e.Year)
}

// Is lets callers match with errors.Is(err, ErrFiscalYearLocked).
func (e *FiscalLockError) Is(target error) bool {
	return target == ErrFiscalYearLocked
}

// GhostNotFoundError is returned when the ghost invoice to promote does not exist.
type GhostNotFoundError struct {
	InvoiceID string
}

func (e *GhostNotFoundError) Error() string {
	return fmt.Sprintf("ghost invoice %s not found", e.InvoiceID)
}

func (e *GhostNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// GapsPresentError blocks a fiscal year closure while the invoice sequence has holes.
type GapsPresentError struct {
	Year    int
	Missing []int
}

func (e *GapsPresentError) Error() string {
	nums := make([]string, len(e.Missing))
	for i, n := range e.Missing {
		nums[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("fiscal year %d has gaps in the invoice sequence: missing %s", e.Year, strings.Join(nums, ", "))
}

func (e *GapsPresentError) Is(target error) bool {
	return target == ErrConflict
}
