package executor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
	"github.com/tuannm99/sqlmask/internal/sql/pseudonym"
	"github.com/tuannm99/sqlmask/internal/sql/render"
	"github.com/tuannm99/sqlmask/pkg/cache"
)

// Error codes reported to remote callers.
const (
	CodeEmptyIdentifier      = "empty_identifier"
	CodeUnterminatedString   = "unterminated_string"
	CodeInvalidEscape        = "invalid_escape"
	CodeInvalidUnicodeEscape = "invalid_unicode_escape"
	CodeGrammarMismatch      = "grammar_mismatch"
	CodeInternal             = "internal"
)

type Config struct {
	// CacheSize bounds the number of memoized results. 0 disables caching.
	CacheSize int
	Logger    *slog.Logger
}

// Executor runs the parse -> pseudonymize -> render pipeline.
type Executor struct {
	log   *slog.Logger
	cache *cache.LRU[string, *Result]
}

func NewExecutor(cfg Config) (*Executor, error) {
	ex := &Executor{log: cfg.Logger}
	if ex.log == nil {
		ex.log = slog.Default()
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("executor: negative cache size %d", cfg.CacheSize)
	}
	if cfg.CacheSize > 0 {
		c, err := cache.NewLRU[string, *Result](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("executor: cache: %w", err)
		}
		ex.cache = c
	}
	return ex, nil
}

// ExecSQL pseudonymizes a single SELECT statement.
func (e *Executor) ExecSQL(sql string) (*Result, error) {
	if e.cache != nil {
		if res, ok := e.cache.Get(sql); ok {
			e.log.Debug("statement served from cache", "table", res.Table, "columns", len(res.Columns))
			return res, nil
		}
	}

	stmt, err := parser.Parse(sql)
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			e.log.Warn("parse failed", "rule", se.Rule, "offset", se.Offset, "code", ErrorCode(err))
		}
		return nil, err
	}

	hashed := pseudonym.Pseudonymize(stmt)
	res := &Result{
		SQL:     render.Render(hashed),
		Table:   string(hashed.Table),
		Columns: hashed.Columns,
	}

	if e.cache != nil {
		e.cache.Add(sql, res)
	}
	e.log.Debug("statement pseudonymized", "table", res.Table, "columns", len(res.Columns))
	return res, nil
}

// CacheStats reports cache usage; ok is false when caching is disabled.
func (e *Executor) CacheStats() (stats cache.Stats, ok bool) {
	if e.cache == nil {
		return cache.Stats{}, false
	}
	return e.cache.Stats(), true
}

// ErrorCode maps a pipeline error to its wire code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, parser.ErrEmptyIdentifier):
		return CodeEmptyIdentifier
	case errors.Is(err, parser.ErrUnterminatedString):
		return CodeUnterminatedString
	case errors.Is(err, parser.ErrInvalidEscape):
		return CodeInvalidEscape
	case errors.Is(err, parser.ErrInvalidUnicodeEscape):
		return CodeInvalidUnicodeEscape
	case errors.Is(err, parser.ErrGrammarMismatch):
		return CodeGrammarMismatch
	default:
		return CodeInternal
	}
}
