package executor

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
	"github.com/tuannm99/sqlmask/internal/sql/pseudonym"
	"github.com/tuannm99/sqlmask/pkg/cache"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExecSQL(t *testing.T) {
	ex, err := NewExecutor(Config{Logger: quietLogger()})
	require.NoError(t, err)

	res, err := ex.ExecSQL(`SELECT x, y FROM t WHERE z = "1"`)
	require.NoError(t, err)

	assert.Equal(t, "SELECT 9dd4e461268c8034f5c8564e155c67a6,415290769594460e2e485922904f345d FROM t WHERE z=1", res.SQL)
	assert.Equal(t, "t", res.Table)
	assert.Equal(t, []pseudonym.HashedColumn{
		{Name: "x", Digest: "9dd4e461268c8034f5c8564e155c67a6"},
		{Name: "y", Digest: "415290769594460e2e485922904f345d"},
	}, res.Columns)

	_, ok := ex.CacheStats()
	assert.False(t, ok)
}

func TestExecSQL_ParseError(t *testing.T) {
	ex, err := NewExecutor(Config{Logger: quietLogger()})
	require.NoError(t, err)

	_, err = ex.ExecSQL("SELECT FROM t")
	require.ErrorIs(t, err, parser.ErrGrammarMismatch)
	assert.Equal(t, CodeGrammarMismatch, ErrorCode(err))
}

func TestExecSQL_Cache(t *testing.T) {
	ex, err := NewExecutor(Config{CacheSize: 4, Logger: quietLogger()})
	require.NoError(t, err)

	first, err := ex.ExecSQL("SELECT a FROM t")
	require.NoError(t, err)
	second, err := ex.ExecSQL("SELECT a FROM t")
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = ex.ExecSQL("SELECT FROM t")
	require.Error(t, err)

	stats, ok := ex.CacheStats()
	require.True(t, ok)
	assert.Equal(t, cache.Stats{Len: 1, Hits: 1, Misses: 2}, stats)
}

func TestNewExecutor_NegativeCache(t *testing.T) {
	_, err := NewExecutor(Config{CacheSize: -1})
	require.Error(t, err)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"SELECT a FROM  ,", CodeEmptyIdentifier},
		{`SELECT a FROM t WHERE a = "x`, CodeUnterminatedString},
		{`SELECT a FROM t WHERE a = "\x"`, CodeInvalidEscape},
		{`SELECT a FROM t WHERE a = "\u12"`, CodeInvalidUnicodeEscape},
		{"DELETE FROM t", CodeGrammarMismatch},
	}
	for i, tt := range tests {
		_, err := parser.Parse(tt.sql)
		require.Error(t, err, "tests[%d]", i)
		assert.Equal(t, tt.want, ErrorCode(err), "tests[%d] %q", i, tt.sql)
	}

	assert.Equal(t, CodeInternal, ErrorCode(errors.New("boom")))
}
