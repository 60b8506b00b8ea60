package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	rest, v, err := parseValue(`"value" rest`)
	require.NoError(t, err)
	assert.Equal(t, Str("value"), v)
	assert.Equal(t, " rest", rest)

	rest, v, err = parseValue("column1 = x")
	require.NoError(t, err)
	assert.Equal(t, Col("column1"), v)
	assert.Equal(t, " = x", rest)
}

func TestParseValue_QuoteCommits(t *testing.T) {
	_, _, err := parseValue(`"open`)
	require.ErrorIs(t, err, ErrUnterminatedString)

	_, _, err = parseValue("= x")
	require.ErrorIs(t, err, ErrGrammarMismatch)
}

func TestParseComparisonOperator(t *testing.T) {
	tests := []struct {
		in   string
		op   ComparisonOperator
		rest string
	}{
		{"=x", Equal, "x"},
		{" = x", Equal, "x"},
		{"\t!=  x", NotEqual, "x"},
		{"!=x", NotEqual, "x"},
	}
	for i, tt := range tests {
		rest, op, err := parseComparisonOperator(tt.in)
		require.NoError(t, err, "tests[%d]", i)
		assert.Equal(t, tt.op, op, "tests[%d]", i)
		assert.Equal(t, tt.rest, rest, "tests[%d]", i)
	}

	_, _, err := parseComparisonOperator(" < x")
	require.ErrorIs(t, err, ErrGrammarMismatch)
}

func TestParseCondition_Comparison(t *testing.T) {
	rest, cond, err := parseCondition("column1 = column2")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, Comparison{Left: Col("column1"), Op: Equal, Right: Col("column2")}, cond)

	_, cond, err = parseCondition(`name != "bob"`)
	require.NoError(t, err)
	assert.Equal(t, Comparison{Left: Col("name"), Op: NotEqual, Right: Str("bob")}, cond)
}

func TestParseCondition_Connectives(t *testing.T) {
	tests := []struct {
		in   string
		want Condition
	}{
		{"AND a b", And{Left: Col("a"), Right: Col("b")}},
		{`and "x""y"`, And{Left: Str("x"), Right: Str("y")}},
		{"OR a b", Or{Left: Col("a"), Right: Col("b")}},
		{`or a "b"`, Or{Left: Col("a"), Right: Str("b")}},
		{"NOT active", Not{Operand: Col("active")}},
		{`not "x"`, Not{Operand: Str("x")}},
	}
	for i, tt := range tests {
		rest, cond, err := parseCondition(tt.in)
		require.NoError(t, err, "tests[%d] %q", i, tt.in)
		assert.Equal(t, tt.want, cond, "tests[%d]", i)
		assert.Equal(t, "", rest, "tests[%d]", i)
	}
}

func TestParseCondition_ComparisonBeforeKeywords(t *testing.T) {
	// A column named like a connective is still a comparison operand.
	_, cond, err := parseCondition("NOT = x")
	require.NoError(t, err)
	assert.Equal(t, Comparison{Left: Col("NOT"), Op: Equal, Right: Col("x")}, cond)

	_, cond, err = parseCondition("ORDER != y")
	require.NoError(t, err)
	assert.Equal(t, Comparison{Left: Col("ORDER"), Op: NotEqual, Right: Col("y")}, cond)
}

func TestParseCondition_EmptyFallback(t *testing.T) {
	for _, in := range []string{"", "a AND b", "< 3"} {
		rest, cond, err := parseCondition(in)
		require.NoError(t, err, "input %q", in)
		assert.Nil(t, cond, "input %q", in)
		assert.Equal(t, in, rest, "input %q", in)
	}
}

func TestParseCondition_LiteralErrorAborts(t *testing.T) {
	_, _, err := parseCondition(`a = "unterminated`)
	require.ErrorIs(t, err, ErrUnterminatedString)

	_, _, err = parseCondition(`NOT "bad \x"`)
	require.ErrorIs(t, err, ErrInvalidEscape)
}
