package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	slogseq "github.com/sokkalf/slog-seq"

	"github.com/tuannm99/sqlmask/internal"
)

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// SetupLogger builds a console logger and, when cfg.SeqURL is set, also
// ships records to Seq. The returned function flushes and closes sinks.
func SetupLogger(cfg internal.LogConfig, w io.Writer) (*slog.Logger, func(), error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var console slog.Handler
	switch cfg.Format {
	case "json":
		console = slog.NewJSONHandler(w, opts)
	default:
		console = slog.NewTextHandler(w, opts)
	}

	if cfg.SeqURL == "" {
		return slog.New(console), func() {}, nil
	}

	_, seqHandler := slogseq.NewLogger(
		cfg.SeqURL,
		slogseq.WithBatchSize(50),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(opts),
	)
	if seqHandler == nil {
		return slog.New(console), func() {}, nil
	}

	logger := slog.New(&multiHandler{handlers: []slog.Handler{console, seqHandler}})
	return logger, func() { seqHandler.Close() }, nil
}
