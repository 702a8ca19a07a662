package nutrition

import "errors"

var (
	// ErrInvalidInput reports a value outside its accepted range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientData reports a computation attempted without the data it needs.
	ErrInsufficientData = errors.New("insufficient data")
)
