package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrBracketNotFound is returned when no premium bracket contains the queried salary
	ErrBracketNotFound = errors.New("no premium bracket found")
	// ErrInvalidBracket marks a rate-table row that breaks the table invariants
	ErrInvalidBracket = errors.New("invalid premium bracket")
	// ErrInvalidQuery is returned when a query parameter is outside its allowed range
	ErrInvalidQuery = errors.New("invalid query")
)

// BracketNotFoundError names the salary that missed every bracket.
type BracketNotFoundError struct {
	MonthlySalary int64
}

func (e *BracketNotFoundError) Error() string {
	return fmt.Sprintf("no premium bracket found for monthly salary %d", e.MonthlySalary)
}

// Is lets errors.Is match the ErrBracketNotFound sentinel.
func (e *BracketNotFoundError) Is(target error) bool {
	return target == ErrBracketNotFound
}

// NewBracketNotFoundError returns a lookup miss for the given salary.
func NewBracketNotFoundError(monthlySalary int64) error {
	return &BracketNotFoundError{MonthlySalary: monthlySalary}
}
