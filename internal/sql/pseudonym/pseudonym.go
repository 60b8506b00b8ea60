// Package pseudonym replaces projected column names with content digests.
package pseudonym

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
)

// HashedColumn pairs a column name with its digest.
type HashedColumn struct {
	Name   parser.Identifier `json:"name"`
	Digest string            `json:"digest"`
}

// HashedSelectStatement mirrors parser.SelectStatement. Where is carried
// over as parsed; only the projection list is pseudonymized.
type HashedSelectStatement struct {
	Columns []HashedColumn    `json:"columns"`
	Table   parser.Identifier `json:"table"`
	Where   parser.Condition  `json:"where,omitempty"`
}

// Digest returns the lowercase hex MD5 of the identifier bytes.
func Digest(id parser.Identifier) string {
	sum := md5.Sum([]byte(id))
	return hex.EncodeToString(sum[:])
}

func HashColumn(c parser.Column) HashedColumn {
	name := c.Ident()
	return HashedColumn{Name: name, Digest: Digest(name)}
}

// Pseudonymize hashes every projected column, keeping order and
// duplicates.
func Pseudonymize(stmt parser.SelectStatement) HashedSelectStatement {
	cols := make([]HashedColumn, 0, len(stmt.Columns))
	for _, c := range stmt.Columns {
		cols = append(cols, HashColumn(c))
	}
	return HashedSelectStatement{
		Columns: cols,
		Table:   stmt.Table,
		Where:   stmt.Where,
	}
}
