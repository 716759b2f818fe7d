package config

const (
	ErrEnvNotFound string = "No .env file found"

	// HTTP methods the statement compiler accepts
	MethodGet    string = "GET"
	MethodPost   string = "POST"
	MethodPut    string = "PUT"
	MethodPatch  string = "PATCH"
	MethodDelete string = "DELETE"

	// Reserved parameter keys that never reach a WHERE clause
	TableParamKey      string = "table"
	LookupTypeParamKey string = "lookup_type"

	// Column used by soft deletes
	ActiveFlagColumn string = "is_active"
)
