package sqlgen

import (
	"strings"

	"github.com/farkinca1971/office-management-sub003/models"
)

// BuildWhere builds a WHERE clause from an ordered parameter mapping, one
// conjunct per entry in insertion order. Null values render as IS NULL,
// everything else as an equality against the escaped literal. An empty
// mapping yields an empty fragment; the caller decides whether that is
// fatal.
func BuildWhere(params models.Params, alias string) string {
	if len(params) == 0 {
		return ""
	}

	conjuncts := make([]string, 0, len(params))

	for _, param := range params {
		column := EscapeIdentifier(param.Key)
		if alias != "" {
			column = alias + "." + column
		}

		if param.Value.IsNull() {
			conjuncts = append(conjuncts, column+" IS NULL")
			continue
		}

		conjuncts = append(conjuncts, column+" = "+EscapeValue(param.Value))
	}

	return "WHERE " + strings.Join(conjuncts, " AND ")
}

// BuildJoins emits one line per join spec, in input order. The join type
// defaults to LEFT and is uppercased without validation; unknown types pass
// through. The ON condition is raw trusted SQL.
func BuildJoins(joins []models.Join) string {
	if len(joins) == 0 {
		return ""
	}

	lines := make([]string, 0, len(joins))

	for _, join := range joins {
		joinType := strings.ToUpper(strings.TrimSpace(join.Type))
		if joinType == "" {
			joinType = "LEFT"
		}

		line := joinType + " JOIN " + EscapeIdentifier(join.Table)
		if join.Alias != "" {
			line += " " + EscapeIdentifier(join.Alias)
		}
		line += " ON " + join.On

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// BuildSelect builds the projection list. A wildcard anywhere wins over
// every other entry. Columns that already carry an AS fragment pass through
// verbatim; everything else is escaped and alias-qualified. An empty column
// list means wildcard.
func BuildSelect(columns []string, alias string) string {
	wildcard := "*"
	if alias != "" {
		wildcard = alias + ".*"
	}

	if len(columns) == 0 {
		return wildcard
	}

	for _, column := range columns {
		if column == "*" {
			return wildcard
		}
	}

	projected := make([]string, 0, len(columns))

	for _, column := range columns {
		if strings.Contains(strings.ToUpper(column), " AS ") {
			projected = append(projected, column)
			continue
		}

		if alias != "" {
			projected = append(projected, alias+"."+EscapeIdentifier(column))
			continue
		}

		projected = append(projected, EscapeIdentifier(column))
	}

	return strings.Join(projected, ", ")
}

// BuildOrderBy builds an ORDER BY clause from the four-shape variant. Raw
// and list shapes pass through verbatim, assumed already valid SQL. The
// structured pair escapes the column and uppercases the direction, falling
// back to `id` ASC for absent fields; the direction itself is not
// validated.
func BuildOrderBy(orderBy models.OrderBy) string {
	switch orderBy.Kind() {
	case models.OrderRaw:
		return "ORDER BY " + orderBy.Raw()
	case models.OrderList:
		if len(orderBy.List()) == 0 {
			return ""
		}
		return "ORDER BY " + strings.Join(orderBy.List(), ", ")
	case models.OrderPair:
		column := orderBy.Column()
		if column == "" {
			column = "id"
		}

		direction := strings.ToUpper(strings.TrimSpace(orderBy.Direction()))
		if direction == "" {
			direction = "ASC"
		}

		return "ORDER BY " + EscapeIdentifier(column) + " " + direction
	default:
		return ""
	}
}
