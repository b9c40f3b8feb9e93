package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/lymphiz/internal/drainage"
)

// ErrAlreadySubmitted is returned when an instance is answered twice.
var ErrAlreadySubmitted = errors.New("answer already submitted")

// ErrInvalidPositions is returned for a malformed sequence submission.
var ErrInvalidPositions = errors.New("invalid sequence positions")

// GenerationError reports that a redraw loop ran out of attempts. The
// dataset cannot satisfy the mode, so it matches drainage.ErrInvalidDataset.
type GenerationError struct {
	Mode     Mode
	Attempts int
	Reason   string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %s (gave up after %d attempts)", e.Mode, e.Reason, e.Attempts)
}

func (e *GenerationError) Unwrap() error { return drainage.ErrInvalidDataset }
