package annuity

import (
	"errors"
	"fmt"
)

// ErrNum is the single domain error surfaced by this package, equivalent to
// a spreadsheet #NUM! result. Every failure mode wraps ErrNum with a cause
// message: invalid timing flag, out-of-range period, non-convergence, zero
// rate, or zero derivative. Callers match with errors.Is and tests can still
// inspect the cause.
var ErrNum = errors.New("#NUM!")

// numErrorf wraps ErrNum with a formatted cause.
func numErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNum}, args...)...)
}
