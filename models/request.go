package models

// Join describes one join line of a read statement. On is caller-supplied
// raw SQL and is never escaped; the caller owns its validation.
type Join struct {
	Type  string
	Table string
	Alias string
	On    string
}

// Request is the descriptor one compile call consumes. It is treated as
// immutable for the duration of the call; the compiler is a pure function
// of it.
type Request struct {
	Method string
	Table  string

	// Params carries path parameters, typically the record identifier.
	Params Params
	// Query carries additional equality filters for read operations.
	Query Params
	// Body carries the payload for write operations.
	Body Params

	Joins         []Join
	SelectColumns []string
	OrderBy       OrderBy

	// SoftDelete applies to DELETE only; nil means true.
	SoftDelete *bool
}
