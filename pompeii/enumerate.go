package pompeii

import "github.com/pkg/errors"

// maxEnumeration bounds any single driver list. A count above it is
// treated as a failed allocation rather than attempted.
const maxEnumeration = 1 << 16

// enumerateAttempts bounds refills when the fill call reports a total
// larger than the slice it was given.
const enumerateAttempts = 4

// enumerate runs the two-call protocol and returns an exactly sized slice.
// The fill call's count wins over the count call's.
func enumerate[T any](what string, call func(count *uint32, out []T) error) ([]T, error) {
	var count uint32
	if err := call(&count, nil); err != nil {
		return nil, newError(EnumerationFailed, err, "count %s", what)
	}

	for attempt := 0; ; attempt++ {
		if count == 0 {
			return nil, nil
		}
		if count > maxEnumeration {
			return nil, newError(AllocationFailure, nil, "%d %s", count, what)
		}

		out := make([]T, count)
		filled := count
		if err := call(&filled, out); err != nil {
			return nil, newError(EnumerationFailed, err, "fill %s", what)
		}
		if filled <= count {
			return out[:filled], nil
		}
		if attempt+1 == enumerateAttempts {
			return nil, newError(EnumerationFailed, errors.Errorf("count kept growing, last %d", filled), "fill %s", what)
		}
		count = filled
	}
}
