package parser

import "strings"

// parseColumn reads a projection entry.
func parseColumn(in string) (string, Column, error) {
	rest, id, err := ScanIdentifier(in)
	if err != nil {
		return in, nil, err
	}
	return rest, ColumnName{Name: id}, nil
}

// parseValue reads a string literal or a column reference. A leading
// quote commits to the literal branch.
func parseValue(in string) (string, Value, error) {
	if strings.HasPrefix(in, `"`) {
		rest, s, err := ScanStringLiteral(in)
		if err != nil {
			return in, nil, err
		}
		return rest, StringVal{Value: s}, nil
	}

	rest, col, err := parseColumn(in)
	if err != nil {
		return in, nil, mismatch("value", in)
	}
	return rest, ColumnRef{Column: col}, nil
}

// parseComparisonOperator reads "=" or "!=" with optional surrounding
// spaces.
func parseComparisonOperator(in string) (string, ComparisonOperator, error) {
	s := space0(in)
	switch {
	case strings.HasPrefix(s, "="):
		return space0(s[1:]), Equal, nil
	case strings.HasPrefix(s, "!="):
		return space0(s[2:]), NotEqual, nil
	default:
		return in, 0, mismatch("comparison operator", in)
	}
}

type conditionRule func(string) (string, Condition, error)

// conditionRules is tried in order; the first rule that matches wins.
// Input that no rule matches yields a nil condition.
var conditionRules = []conditionRule{
	parseComparison,
	parseAnd,
	parseOr,
	parseNot,
}

func parseCondition(in string) (string, Condition, error) {
	for _, rule := range conditionRules {
		rest, cond, err := rule(in)
		if err == nil {
			return rest, cond, nil
		}
		if committed(err) {
			return in, nil, err
		}
	}
	return in, nil, nil
}

func parseComparison(in string) (string, Condition, error) {
	rest, left, err := parseValue(in)
	if err != nil {
		return in, nil, err
	}
	rest, op, err := parseComparisonOperator(rest)
	if err != nil {
		return in, nil, err
	}
	rest, right, err := parseValue(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, Comparison{Left: left, Op: op, Right: right}, nil
}

func parseAnd(in string) (string, Condition, error) {
	rest, left, right, err := parseConnective(in, "AND")
	if err != nil {
		return in, nil, err
	}
	return rest, And{Left: left, Right: right}, nil
}

func parseOr(in string) (string, Condition, error) {
	rest, left, right, err := parseConnective(in, "OR")
	if err != nil {
		return in, nil, err
	}
	return rest, Or{Left: left, Right: right}, nil
}

func parseNot(in string) (string, Condition, error) {
	rest, err := keyword(space0(in), "NOT")
	if err != nil {
		return in, nil, err
	}
	rest, operand, err := parseValue(space0(rest))
	if err != nil {
		return in, nil, err
	}
	return rest, Not{Operand: operand}, nil
}

// parseConnective reads `kw value value`. The operands are bare values.
func parseConnective(in, kw string) (string, Value, Value, error) {
	rest, err := keyword(space0(in), kw)
	if err != nil {
		return in, nil, nil, err
	}
	rest, left, err := parseValue(space0(rest))
	if err != nil {
		return in, nil, nil, err
	}
	rest, right, err := parseValue(space0(rest))
	if err != nil {
		return in, nil, nil, err
	}
	return rest, left, right, nil
}
