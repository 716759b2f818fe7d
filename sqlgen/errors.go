package sqlgen

import "errors"

var (
	// ErrMissingTable means no table could be resolved from the descriptor.
	ErrMissingTable = errors.New("no table specified")

	// ErrUnsupportedMethod means the method is outside GET/POST/PUT/PATCH/DELETE.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrEmptyBody means a write operation arrived with zero usable body fields.
	ErrEmptyBody = errors.New("empty request body")

	// ErrMissingIdentifier means an UPDATE or DELETE has no path parameters to
	// build a WHERE clause from. Compiling it anyway would touch every row of
	// the table, so this is the one guard that must never be relaxed.
	ErrMissingIdentifier = errors.New("no identifier for where clause")
)
