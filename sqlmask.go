// Package sqlmask parses simple SELECT statements, replaces projected
// column names with MD5 digests and renders the result back to SQL.
//
//	stmt, err := sqlmask.Parse(`SELECT email, name FROM users WHERE id = "7"`)
//	out := sqlmask.Render(sqlmask.Pseudonymize(stmt))
//	// SELECT 0c83f57c786a0b4a39efab23731c7ebc,b068931cc450442b63f5b3d276ea4297 FROM users WHERE id=7
package sqlmask

import (
	"github.com/tuannm99/sqlmask/internal/sql/parser"
	"github.com/tuannm99/sqlmask/internal/sql/pseudonym"
	"github.com/tuannm99/sqlmask/internal/sql/render"
)

type (
	SelectStatement       = parser.SelectStatement
	HashedSelectStatement = pseudonym.HashedSelectStatement
	HashedColumn          = pseudonym.HashedColumn
	SyntaxError           = parser.SyntaxError
)

var (
	ErrEmptyIdentifier      = parser.ErrEmptyIdentifier
	ErrUnterminatedString   = parser.ErrUnterminatedString
	ErrInvalidEscape        = parser.ErrInvalidEscape
	ErrInvalidUnicodeEscape = parser.ErrInvalidUnicodeEscape
	ErrGrammarMismatch      = parser.ErrGrammarMismatch
)

func Parse(sql string) (SelectStatement, error) { return parser.Parse(sql) }

func Pseudonymize(stmt SelectStatement) HashedSelectStatement { return pseudonym.Pseudonymize(stmt) }

func Render(stmt HashedSelectStatement) string { return render.Render(stmt) }

// Anonymize is Render(Pseudonymize(Parse(sql))).
func Anonymize(sql string) (string, error) {
	stmt, err := Parse(sql)
	if err != nil {
		return "", err
	}
	return Render(Pseudonymize(stmt)), nil
}
