package parser

import (
	"encoding/json"
	"fmt"
)

// Identifier is a table or column name: a non-empty run of letters,
// digits and underscores.
type Identifier string

func (id Identifier) String() string { return string(id) }

// ----- Columns -----

// Column is an entry of the projection list.
// ColumnName is currently the only kind.
type Column interface {
	columnNode()
	Ident() Identifier
}

type ColumnName struct {
	Name Identifier
}

func (ColumnName) columnNode()          {}
func (c ColumnName) Ident() Identifier { return c.Name }
func (c ColumnName) String() string    { return string(c.Name) }

// ----- Values -----

// Value is an operand of a condition.
type Value interface {
	valueNode()
	String() string
}

// StringVal holds the decoded text of a double-quoted literal.
type StringVal struct {
	Value string
}

func (StringVal) valueNode() {}

// String returns the raw text; literals are not re-quoted on output.
func (v StringVal) String() string { return v.Value }

func (v StringVal) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"string": v.Value})
}

type ColumnRef struct {
	Column Column
}

func (ColumnRef) valueNode()       {}
func (v ColumnRef) String() string { return string(v.Column.Ident()) }

func (v ColumnRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"column": string(v.Column.Ident())})
}

// Col is shorthand for a column reference operand.
func Col(name string) ColumnRef {
	return ColumnRef{Column: ColumnName{Name: Identifier(name)}}
}

// Str is shorthand for a string literal operand.
func Str(s string) StringVal {
	return StringVal{Value: s}
}

// ----- Operators -----

type ComparisonOperator int

const (
	Equal ComparisonOperator = iota
	NotEqual
)

func (op ComparisonOperator) String() string {
	switch op {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	default:
		return fmt.Sprintf("ComparisonOperator(%d)", int(op))
	}
}

func (op ComparisonOperator) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// ----- Conditions -----

// Condition is a WHERE clause. A statement without a filter has a nil
// Condition; there is no empty variant.
type Condition interface {
	condNode()
}

// Comparison: Left Op Right (e.g. col = "x").
type Comparison struct {
	Left  Value
	Op    ComparisonOperator
	Right Value
}

// And, Or and Not take bare operands, not nested conditions.
type And struct {
	Left  Value
	Right Value
}

type Or struct {
	Left  Value
	Right Value
}

type Not struct {
	Operand Value
}

func (Comparison) condNode() {}
func (And) condNode()        {}
func (Or) condNode()         {}
func (Not) condNode()        {}

func (c Comparison) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string             `json:"kind"`
		Left  Value              `json:"left"`
		Op    ComparisonOperator `json:"op"`
		Right Value              `json:"right"`
	}{"comparison", c.Left, c.Op, c.Right})
}

func (c And) MarshalJSON() ([]byte, error) {
	return marshalBinary("and", c.Left, c.Right)
}

func (c Or) MarshalJSON() ([]byte, error) {
	return marshalBinary("or", c.Left, c.Right)
}

func (c Not) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Operand Value  `json:"operand"`
	}{"not", c.Operand})
}

func marshalBinary(kind string, left, right Value) ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Left  Value  `json:"left"`
		Right Value  `json:"right"`
	}{kind, left, right})
}

// ----- SELECT -----

// SelectStatement: SELECT col1, col2 FROM table [WHERE cond].
// Column order is significant and duplicates are kept.
type SelectStatement struct {
	Columns []Column
	Table   Identifier
	Where   Condition
}

// ColumnNames returns the projection list as plain names.
func (s SelectStatement) ColumnNames() []string {
	out := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, string(c.Ident()))
	}
	return out
}

func (s SelectStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Columns []string   `json:"columns"`
		Table   Identifier `json:"table"`
		Where   Condition  `json:"where,omitempty"`
	}{s.ColumnNames(), s.Table, s.Where})
}
