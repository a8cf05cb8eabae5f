package genai

import "errors"

var (
	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation endpoint unavailable")

	// ErrTimeout indicates the request exceeded the task timeout.
	ErrTimeout = errors.New("generation request timed out")
)
