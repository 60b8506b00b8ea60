package sqlclient

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tuannm99/sqlmask/internal/sql/executor"
	"github.com/tuannm99/sqlmask/server/sqlmaskwire"
)

// ServerError is an error reported by the server for one request.
type ServerError struct {
	Code    string
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Client is a simple synchronous client.
// It locks send/recv so you can call Anonymize concurrently but they'll serialize.
type Client struct {
	conn  net.Conn
	mu    sync.Mutex
	id    atomic.Uint64
	codec sqlmaskwire.Codec

	// Optional per-request timeout (0 = no timeout).
	rwTimeout time.Duration
}

func Dial(addr string, timeout time.Duration) (*Client, error) {
	return DialContext(context.Background(), addr, timeout)
}

func DialContext(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	d := net.Dialer{Timeout: timeout}
	c, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: c}, nil
}

// SetRWTimeout sets a per-request read/write deadline.
func (c *Client) SetRWTimeout(d time.Duration) {
	if c == nil {
		return
	}
	c.rwTimeout = d
}

// SetMaxFrameSize must match the server limit when it is not the default.
func (c *Client) SetMaxFrameSize(n int) {
	if c == nil {
		return
	}
	c.codec.MaxFrameSize = n
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) Anonymize(sql string) (*executor.Result, error) {
	return c.AnonymizeContext(context.Background(), sql)
}

func (c *Client) AnonymizeContext(ctx context.Context, sql string) (*executor.Result, error) {
	if c == nil || c.conn == nil {
		return nil, fmt.Errorf("sqlclient: nil client")
	}

	reqID := c.id.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.applyDeadline(ctx); err != nil {
		return nil, err
	}
	defer func() {
		// Clear deadline after request so idle connection doesn't expire.
		_ = c.conn.SetDeadline(time.Time{})
	}()

	req := sqlmaskwire.AnonymizeRequest{ID: reqID, SQL: sql}
	if err := c.codec.WriteFrame(c.conn, req); err != nil {
		return nil, err
	}

	var resp sqlmaskwire.AnonymizeResponse
	if err := c.codec.ReadFrame(c.conn, &resp); err != nil {
		return nil, err
	}

	if resp.ID != reqID {
		return nil, fmt.Errorf("sqlclient: response id mismatch: got=%d want=%d", resp.ID, reqID)
	}
	if resp.Error != "" {
		return nil, &ServerError{Code: resp.Code, Message: resp.Error}
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("sqlclient: empty response for id %d", reqID)
	}
	return resp.Result, nil
}

func (c *Client) applyDeadline(ctx context.Context) error {
	// Prefer context deadline if present; otherwise use rwTimeout.
	if dl, ok := ctx.Deadline(); ok {
		return c.conn.SetDeadline(dl)
	}
	if c.rwTimeout > 0 {
		return c.conn.SetDeadline(time.Now().Add(c.rwTimeout))
	}
	return nil
}
