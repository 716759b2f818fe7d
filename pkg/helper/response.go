package helper

// Envelope flattens a row slice into the uniform response shape: one row
// becomes an object, several rows stay an array, none becomes an empty
// array.
func Envelope(rows []map[string]any) map[string]any {
	var data any

	switch len(rows) {
	case 0:
		data = []map[string]any{}
	case 1:
		data = rows[0]
	default:
		data = rows
	}

	return map[string]any{
		"success": true,
		"data":    data,
	}
}

// ErrorEnvelope shapes a failure the same way Envelope shapes a success.
func ErrorEnvelope(err error) map[string]any {
	return map[string]any{
		"success": false,
		"error":   err.Error(),
	}
}
