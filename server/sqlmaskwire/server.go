package sqlmaskwire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tuannm99/sqlmask/internal/sql/executor"
)

const CodeBadRequest = "bad_request"

type ServerConfig struct {
	Addr         string
	MaxFrameSize int
	// IdleTimeout closes a connection that sends nothing for this long.
	// 0 means no timeout.
	IdleTimeout time.Duration
	CacheSize   int
}

type Server struct {
	ex    *executor.Executor
	codec Codec
	idle  time.Duration
	log   *slog.Logger
}

func NewServer(ex *executor.Executor, sc ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		ex:    ex,
		codec: Codec{MaxFrameSize: sc.MaxFrameSize},
		idle:  sc.IdleTimeout,
		log:   logger,
	}
}

// Run listens on sc.Addr and serves until ctx is cancelled.
func Run(ctx context.Context, sc ServerConfig, logger *slog.Logger) error {
	ex, err := executor.NewExecutor(executor.Config{CacheSize: sc.CacheSize, Logger: logger})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", sc.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return NewServer(ex, sc, logger).Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then closes the
// listener and every open connection and waits for their handlers.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer func() { _ = ln.Close() }()

	s.log.Info("sqlmask tcp server listening", "addr", ln.Addr().String())

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info("sqlmask tcp server stopped")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.log.Error("accept failed", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer func() { _ = conn.Close() }()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	log := s.log.With("conn", uuid.NewString(), "remote", conn.RemoteAddr().String())
	log.Debug("connection opened")
	defer log.Debug("connection closed")

	for {
		if s.idle > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.idle))
		}

		var req AnonymizeRequest
		if err := s.codec.ReadFrame(conn, &req); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			if errors.Is(err, ErrBadJSON) {
				// The frame body was consumed, so the stream is still in sync.
				if s.reply(conn, log, AnonymizeResponse{Error: err.Error(), Code: CodeBadRequest}) != nil {
					return
				}
				continue
			}
			log.Warn("read frame failed", "error", err)
			return
		}

		if err := s.reply(conn, log, s.exec(req)); err != nil {
			return
		}
	}
}

func (s *Server) exec(req AnonymizeRequest) AnonymizeResponse {
	res, err := s.ex.ExecSQL(req.SQL)
	if err != nil {
		return AnonymizeResponse{ID: req.ID, Error: err.Error(), Code: executor.ErrorCode(err)}
	}
	return AnonymizeResponse{ID: req.ID, Result: res}
}

func (s *Server) reply(conn net.Conn, log *slog.Logger, resp AnonymizeResponse) error {
	if err := s.codec.WriteFrame(conn, resp); err != nil {
		log.Warn("write frame failed", "id", resp.ID, "error", err)
		return err
	}
	return nil
}
