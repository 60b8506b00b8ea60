package executor

import "github.com/tuannm99/sqlmask/internal/sql/pseudonym"

// Result is the pseudonymized form of one statement returned to the caller.
// Results may be shared through the cache and must not be modified.
type Result struct {
	SQL     string                   `json:"sql"`
	Table   string                   `json:"table"`
	Columns []pseudonym.HashedColumn `json:"columns"`
}
