package models

// Operation is the CRUD kind of a compiled statement.
type Operation string

const (
	OperationSelect Operation = "SELECT"
	OperationInsert Operation = "INSERT"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

const (
	DeleteTypeSoft = "soft"
	DeleteTypeHard = "hard"
)

// CompiledStatement is the compiler's output: the statement text with
// escaped literals embedded, the operation kind, and descriptive metadata.
// It has no further lifecycle; the compiler retains no reference to it.
type CompiledStatement struct {
	Statement string
	Operation Operation
	Method    string
	Table     string
	Info      StatementInfo
}

// StatementInfo describes what the compiler decided. It never affects the
// statement text; only the fields relevant to the operation are populated.
type StatementInfo struct {
	// SELECT
	Alias      string
	HasJoins   bool
	HasWhere   bool
	HasOrderBy bool

	// INSERT
	Columns    []string
	ValueCount int

	// UPDATE
	UpdatedFields []string

	// DELETE
	DeleteType string

	// WhereParams lists the parameter keys that fed the WHERE clause.
	WhereParams []string

	Debug DebugInfo
}

// DebugInfo echoes the input key names for traceability.
type DebugInfo struct {
	ParamKeys []string
	QueryKeys []string
	BodyKeys  []string
}

// Result is what the execution adapter hands back after running a compiled
// statement: scanned rows for reads, the affected count for writes.
type Result struct {
	Rows         []map[string]any
	RowsAffected int64
}
