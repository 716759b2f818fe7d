package sqlgen

import (
	"strconv"
	"strings"

	"github.com/farkinca1971/office-management-sub003/models"
)

// EscapeIdentifier wraps a table or column name in backticks and doubles
// any backtick inside it. It does not validate character set or length;
// callers supply sane identifiers.
func EscapeIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// EscapeValue renders a scalar as a SQL literal. It is total over the Value
// variant and is the sole literal-rendering path of the compiler; only raw
// join ON text bypasses it.
func EscapeValue(v models.Value) string {
	switch v.Kind() {
	case models.KindNull:
		return "NULL"
	case models.KindBool:
		if v.Bool() {
			return "1"
		}
		return "0"
	case models.KindNumber:
		return strconv.FormatFloat(v.Number(), 'f', -1, 64)
	default:
		return "'" + strings.ReplaceAll(v.Text(), "'", "''") + "'"
	}
}
