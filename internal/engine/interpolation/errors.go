package interpolation

import (
	"errors"
	"fmt"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// OutOfRangeError means no range of the family covers the requested QL.
// MinQL and MaxQL are the family's overall bounds, zero when it has no ranges.
type OutOfRangeError struct {
	AOID  int64
	QL    int
	MinQL int
	MaxQL int
}

func (e *OutOfRangeError) Error() string {
	if e.MinQL == 0 && e.MaxQL == 0 {
		return fmt.Sprintf("item %d has no interpolation ranges, ql %d unavailable", e.AOID, e.QL)
	}
	return fmt.Sprintf("ql %d of item %d is outside known ranges %d-%d", e.QL, e.AOID, e.MinQL, e.MaxQL)
}

// MissingBoundaryDataError means a stored boundary item of the matching
// range could not be fetched. Err is the fetch error, nil when the fetcher
// returned no item.
type MissingBoundaryDataError struct {
	AOID       int64
	QL         int
	Range      ao.InterpolationRange
	BoundaryQL int
	Err        error
}

func (e *MissingBoundaryDataError) Error() string {
	msg := fmt.Sprintf("boundary ql %d (base %d) for item %d at ql %d in range %d-%d",
		e.BoundaryQL, e.Range.BaseAOID, e.AOID, e.QL, e.Range.MinQL, e.Range.MaxQL)
	if e.Err != nil {
		return "failed to fetch " + msg + ": " + e.Err.Error()
	}
	return "missing " + msg
}

func (e *MissingBoundaryDataError) Unwrap() error {
	return e.Err
}

// IsOutOfRange reports whether err is or wraps an OutOfRangeError
func IsOutOfRange(err error) bool {
	var target *OutOfRangeError
	return errors.As(err, &target)
}

// IsMissingBoundaryData reports whether err is or wraps a MissingBoundaryDataError
func IsMissingBoundaryData(err error) bool {
	var target *MissingBoundaryDataError
	return errors.As(err, &target)
}
