package sqlmaskwire

import "github.com/tuannm99/sqlmask/internal/sql/executor"

// AnonymizeRequest carries one SELECT statement.
type AnonymizeRequest struct {
	ID  uint64 `json:"id"`
	SQL string `json:"sql"`
}

// AnonymizeResponse answers the request with the same ID. Exactly one of
// Result and Error is set; Code classifies the error.
type AnonymizeResponse struct {
	ID     uint64           `json:"id"`
	Result *executor.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
	Code   string           `json:"code,omitempty"`
}
