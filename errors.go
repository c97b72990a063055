package trackgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt is returned when a filter or export operation is invoked
	// before Build has constructed the correspondence graph.
	ErrNotBuilt = errors.New("correspondence graph not built")
)

// ErrNilImage indicates an image pair with a missing image reference,
// a caller contract violation caught during Build.
type ErrNilImage struct {
	PairIndex int
}

func (e *ErrNilImage) Error() string {
	return fmt.Sprintf("nil image reference in pair %d", e.PairIndex)
}
