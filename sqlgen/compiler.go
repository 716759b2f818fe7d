package sqlgen

import (
	"fmt"
	"strings"

	"github.com/farkinca1971/office-management-sub003/config"
	"github.com/farkinca1971/office-management-sub003/models"

	"github.com/pkg/errors"
)

// Compile translates one request descriptor into a ready-to-run statement
// plus metadata describing what was built. It is a pure function: no I/O,
// no shared state, and the same descriptor always compiles to the same
// output. It never executes the statement.
func Compile(req models.Request) (models.CompiledStatement, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))

	table := req.Table
	if table == "" {
		if v, ok := req.Params.Get(config.TableParamKey); ok {
			table = v.String()
		}
	}

	if table == "" {
		return models.CompiledStatement{}, errors.Wrapf(ErrMissingTable, "method %s", method)
	}

	switch method {
	case config.MethodGet:
		return compileSelect(req, method, table), nil
	case config.MethodPost:
		return compileInsert(req, method, table)
	case config.MethodPut, config.MethodPatch:
		return compileUpdate(req, method, table)
	case config.MethodDelete:
		return compileDelete(req, method, table)
	default:
		return models.CompiledStatement{}, errors.Wrapf(ErrUnsupportedMethod, "method %q", req.Method)
	}
}

// tableAlias derives the deterministic short alias: the first two
// characters of the table name, lowercased.
func tableAlias(table string) string {
	table = strings.ToLower(table)

	runes := []rune(table)
	if len(runes) <= 2 {
		return table
	}

	return string(runes[:2])
}

func compileSelect(req models.Request, method, table string) models.CompiledStatement {
	alias := tableAlias(table)

	whereParams := req.Params.Merge(req.Query).
		Without(config.TableParamKey, config.LookupTypeParamKey)

	selectClause := BuildSelect(req.SelectColumns, alias)
	joinClause := BuildJoins(req.Joins)
	whereClause := BuildWhere(whereParams, alias)
	orderClause := BuildOrderBy(req.OrderBy)

	parts := []string{
		"SELECT " + selectClause,
		fmt.Sprintf("FROM %s %s", EscapeIdentifier(table), alias),
	}
	if joinClause != "" {
		parts = append(parts, joinClause)
	}
	if whereClause != "" {
		parts = append(parts, whereClause)
	}
	if orderClause != "" {
		parts = append(parts, orderClause)
	}

	return models.CompiledStatement{
		Statement: strings.TrimSpace(strings.Join(parts, "\n")),
		Operation: models.OperationSelect,
		Method:    method,
		Table:     table,
		Info: models.StatementInfo{
			Alias:       alias,
			HasJoins:    joinClause != "",
			HasWhere:    whereClause != "",
			HasOrderBy:  orderClause != "",
			WhereParams: whereParams.Keys(),
			Debug:       debugInfo(req),
		},
	}
}

func compileInsert(req models.Request, method, table string) (models.CompiledStatement, error) {
	if len(req.Body) == 0 {
		return models.CompiledStatement{}, errors.Wrapf(ErrEmptyBody, "insert into %s", table)
	}

	columns := make([]string, 0, len(req.Body))
	values := make([]string, 0, len(req.Body))

	for _, field := range req.Body {
		columns = append(columns, EscapeIdentifier(field.Key))
		values = append(values, EscapeValue(field.Value))
	}

	statement := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		EscapeIdentifier(table),
		strings.Join(columns, ", "),
		strings.Join(values, ", "),
	)

	return models.CompiledStatement{
		Statement: statement,
		Operation: models.OperationInsert,
		Method:    method,
		Table:     table,
		Info: models.StatementInfo{
			Columns:    req.Body.Keys(),
			ValueCount: len(values),
			Debug:      debugInfo(req),
		},
	}, nil
}

func compileUpdate(req models.Request, method, table string) (models.CompiledStatement, error) {
	if len(req.Body) == 0 {
		return models.CompiledStatement{}, errors.Wrapf(ErrEmptyBody, "update %s", table)
	}

	whereClause := BuildWhere(req.Params, "")
	if whereClause == "" {
		return models.CompiledStatement{}, errors.Wrapf(ErrMissingIdentifier, "update %s", table)
	}

	assignments := make([]string, 0, len(req.Body))
	for _, field := range req.Body {
		assignments = append(assignments, EscapeIdentifier(field.Key)+" = "+EscapeValue(field.Value))
	}

	statement := fmt.Sprintf(
		"UPDATE %s SET %s %s",
		EscapeIdentifier(table),
		strings.Join(assignments, ", "),
		whereClause,
	)

	return models.CompiledStatement{
		Statement: strings.TrimSpace(statement),
		Operation: models.OperationUpdate,
		Method:    method,
		Table:     table,
		Info: models.StatementInfo{
			UpdatedFields: req.Body.Keys(),
			WhereParams:   req.Params.Keys(),
			Debug:         debugInfo(req),
		},
	}, nil
}

func compileDelete(req models.Request, method, table string) (models.CompiledStatement, error) {
	whereClause := BuildWhere(req.Params, "")
	if whereClause == "" {
		return models.CompiledStatement{}, errors.Wrapf(ErrMissingIdentifier, "delete from %s", table)
	}

	// Soft delete is the default; rows are marked inactive instead of
	// removed.
	if req.SoftDelete == nil || *req.SoftDelete {
		statement := fmt.Sprintf(
			"UPDATE %s SET %s = 0 %s",
			EscapeIdentifier(table),
			EscapeIdentifier(config.ActiveFlagColumn),
			whereClause,
		)

		return models.CompiledStatement{
			Statement: statement,
			Operation: models.OperationUpdate,
			Method:    method,
			Table:     table,
			Info: models.StatementInfo{
				DeleteType:  models.DeleteTypeSoft,
				WhereParams: req.Params.Keys(),
				Debug:       debugInfo(req),
			},
		}, nil
	}

	statement := fmt.Sprintf("DELETE FROM %s %s", EscapeIdentifier(table), whereClause)

	return models.CompiledStatement{
		Statement: statement,
		Operation: models.OperationDelete,
		Method:    method,
		Table:     table,
		Info: models.StatementInfo{
			DeleteType:  models.DeleteTypeHard,
			WhereParams: req.Params.Keys(),
			Debug:       debugInfo(req),
		},
	}, nil
}

func debugInfo(req models.Request) models.DebugInfo {
	return models.DebugInfo{
		ParamKeys: req.Params.Keys(),
		QueryKeys: req.Query.Keys(),
		BodyKeys:  req.Body.Keys(),
	}
}
