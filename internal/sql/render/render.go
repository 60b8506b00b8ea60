// Package render turns SELECT ASTs back into SQL text.
package render

import (
	"strings"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
	"github.com/tuannm99/sqlmask/internal/sql/pseudonym"
)

// Render writes the pseudonymized statement. The projection list shows
// digests joined by a bare comma; the WHERE clause keeps original names.
func Render(s pseudonym.HashedSelectStatement) string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Digest)
	}
	return build(names, s.Table, s.Where)
}

// RenderOriginal writes the statement with its original column names.
func RenderOriginal(s parser.SelectStatement) string {
	return build(s.ColumnNames(), s.Table, s.Where)
}

func build(columns []string, table parser.Identifier, where parser.Condition) string {
	var out strings.Builder
	out.WriteString("SELECT ")
	out.WriteString(strings.Join(columns, ","))
	out.WriteString(" FROM ")
	out.WriteString(string(table))
	out.WriteString(Where(where))
	return out.String()
}

// Where renders a condition including its leading " WHERE ", or "" for
// a nil condition. Operands are written raw: literals are not re-quoted.
func Where(c parser.Condition) string {
	switch c := c.(type) {
	case parser.Comparison:
		return " WHERE " + c.Left.String() + c.Op.String() + c.Right.String()
	case parser.And:
		return " WHERE " + c.Left.String() + " AND " + c.Right.String()
	case parser.Or:
		return " WHERE " + c.Left.String() + " OR " + c.Right.String()
	case parser.Not:
		return " WHERE NOT " + c.Operand.String()
	default:
		return ""
	}
}
