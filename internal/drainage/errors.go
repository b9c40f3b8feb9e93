package drainage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDataset is matched by every dataset load failure and by
// generation failures that a dataset can never satisfy.
var ErrInvalidDataset = errors.New("invalid drainage dataset")

// LoadError reports why a dataset could not be loaded.
type LoadError struct {
	Source   string
	Problems []string
	Err      error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load drainage dataset %s", e.Source)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Problems) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Problems, "; "))
	}
	return b.String()
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidDataset}
	}
	return []error{ErrInvalidDataset, e.Err}
}
