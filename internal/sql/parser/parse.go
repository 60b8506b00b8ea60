package parser

import "strings"

// Parse parses a single SELECT statement.
// Policy: trailing whitespace and one optional ';' are accepted, anything
// else after the statement is an error.
func Parse(sql string) (SelectStatement, error) {
	rest, stmt, err := ParseSelect(sql)
	if err != nil {
		return SelectStatement{}, withOffset(err, sql)
	}

	rest = multispace0(rest)
	rest = multispace0(strings.TrimPrefix(rest, ";"))
	if rest != "" {
		return SelectStatement{}, withOffset(mismatch("end of statement", rest), sql)
	}
	return stmt, nil
}

// ParseSelect parses
//
//	SELECT col [, col]* FROM table [WHERE condition]
//
// and returns the input it did not consume.
func ParseSelect(in string) (string, SelectStatement, error) {
	var stmt SelectStatement

	rest, err := keyword(in, "SELECT")
	if err != nil {
		return in, stmt, err
	}
	if rest, err = multispace1(rest, "whitespace after SELECT"); err != nil {
		return in, stmt, err
	}

	rest, stmt.Columns = parseColumnList(rest)

	if rest, err = multispace1(rest, "whitespace before FROM"); err != nil {
		return in, stmt, err
	}
	if rest, err = keyword(rest, "FROM"); err != nil {
		return in, stmt, err
	}
	if rest, err = multispace1(rest, "whitespace after FROM"); err != nil {
		return in, stmt, err
	}
	if rest, stmt.Table, err = ScanIdentifier(rest); err != nil {
		return in, stmt, err
	}

	rest, stmt.Where, err = parseWhere(rest)
	if err != nil {
		return in, stmt, err
	}
	return rest, stmt, nil
}

// parseColumnList reads zero or more comma separated columns. A trailing
// comma that is not followed by a column is left in the input.
func parseColumnList(in string) (string, []Column) {
	var cols []Column

	rest, col, err := parseColumn(multispace0(in))
	if err != nil {
		return in, cols
	}
	cols = append(cols, col)

	for {
		next, err := literal(rest, ",")
		if err != nil {
			return rest, cols
		}
		next, col, err = parseColumn(multispace0(next))
		if err != nil {
			return rest, cols
		}
		cols = append(cols, col)
		rest = next
	}
}

// parseWhere reads an optional WHERE clause. A missing clause leaves the
// input untouched and yields a nil condition.
func parseWhere(in string) (string, Condition, error) {
	rest, err := keyword(multispace0(in), "WHERE")
	if err != nil {
		return in, nil, nil
	}
	if rest, err = multispace1(rest, "whitespace after WHERE"); err != nil {
		return in, nil, nil
	}
	return parseCondition(rest)
}
