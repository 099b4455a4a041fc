package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCellToken is matched by every *InvalidCellTokenError.
	ErrInvalidCellToken = errors.New("invalid cell token")
	// ErrShapeMismatch is matched by every *ShapeMismatchError.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrEmptyGrid is returned when a source holds no rows at all.
	ErrEmptyGrid = errors.New("grid source contains no rows")
)

// InvalidCellTokenError reports a token that is neither "0" nor "1".
// Row and Column are zero-based; both are -1 when the token was parsed
// outside of a grid source.
type InvalidCellTokenError struct {
	Token  string
	Row    int
	Column int
}

func (e *InvalidCellTokenError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid cell token %q", e.Token)
	}
	return fmt.Sprintf("invalid cell token %q at row %d, column %d", e.Token, e.Row, e.Column)
}

// Is lets errors.Is match against ErrInvalidCellToken.
func (e *InvalidCellTokenError) Is(target error) bool {
	return target == ErrInvalidCellToken
}

// ShapeMismatchError reports a cell matrix whose dimensions disagree with
// the declared width and height. Row is the first offending row, or -1
// when the row count itself is wrong.
type ShapeMismatchError struct {
	ExpectedWidth  int
	ExpectedHeight int
	ActualWidth    int
	ActualHeight   int
	Row            int
}

func (e *ShapeMismatchError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("shape mismatch: expected %d rows, got %d",
			e.ExpectedHeight, e.ActualHeight)
	}
	return fmt.Sprintf("shape mismatch: expected %dx%d, row %d has width %d",
		e.ExpectedWidth, e.ExpectedHeight, e.Row, e.ActualWidth)
}

// Is lets errors.Is match against ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
