package pseudonym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
)

func TestDigest(t *testing.T) {
	assert.Equal(t, "85462f3980833d67fc6a95b192e39299", Digest("column1"))
	assert.Equal(t, "92e0be3306efbbe4cfa50133f6d511dc", Digest("column2"))
	assert.Equal(t, "9dd4e461268c8034f5c8564e155c67a6", Digest("x"))
	assert.Len(t, Digest("名前"), 32)
}

func TestDigest_Deterministic(t *testing.T) {
	assert.Equal(t, Digest("user_id"), Digest("user_id"))
	assert.NotEqual(t, Digest("user_id"), Digest("User_id"))
}

func TestPseudonymize(t *testing.T) {
	stmt, err := parser.Parse(`SELECT column1, column2, column1 FROM my_table WHERE column2 = "'value'"`)
	require.NoError(t, err)

	got := Pseudonymize(stmt)

	assert.Equal(t, []HashedColumn{
		{Name: "column1", Digest: "85462f3980833d67fc6a95b192e39299"},
		{Name: "column2", Digest: "92e0be3306efbbe4cfa50133f6d511dc"},
		{Name: "column1", Digest: "85462f3980833d67fc6a95b192e39299"},
	}, got.Columns)
	assert.Equal(t, parser.Identifier("my_table"), got.Table)
}

func TestPseudonymize_WhereUntouched(t *testing.T) {
	for _, sql := range []string{
		"SELECT a FROM t",
		"SELECT a FROM t WHERE a = b",
		`SELECT a FROM t WHERE b != "x"`,
		"SELECT a FROM t WHERE NOT a",
		"SELECT a FROM t WHERE OR a b",
	} {
		stmt, err := parser.Parse(sql)
		require.NoError(t, err, sql)
		assert.Equal(t, stmt.Where, Pseudonymize(stmt).Where, sql)
	}
}

func TestPseudonymize_Repeatable(t *testing.T) {
	stmt := parser.SelectStatement{
		Columns: []parser.Column{parser.ColumnName{Name: "a"}, parser.ColumnName{Name: "b"}},
		Table:   "t",
	}
	assert.Equal(t, Pseudonymize(stmt), Pseudonymize(stmt))
	assert.Empty(t, Pseudonymize(parser.SelectStatement{Table: "t"}).Columns)
}
