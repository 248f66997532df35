package gap_test

import (
	"errors"
	"linkgap/pkg/serrors"
)

// isKind reports whether err carries the given semantic kind.
func isKind(err error, k serrors.Kind) bool {
	return errors.Is(err, k)
}
