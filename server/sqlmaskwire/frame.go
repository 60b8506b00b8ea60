package sqlmaskwire

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	// DefaultMaxFrameSize limits memory usage on malformed/hostile input.
	DefaultMaxFrameSize = 8 << 20 // 8 MiB
)

var (
	ErrEmptyFrame    = errors.New("sqlmaskwire: empty frame")
	ErrFrameTooLarge = errors.New("sqlmaskwire: frame too large")
	ErrBadJSON       = errors.New("sqlmaskwire: bad json")
)

// Codec reads and writes length-prefixed JSON frames: a 4-byte big-endian
// length followed by the JSON body.
type Codec struct {
	MaxFrameSize int
}

func (c Codec) limit() int {
	if c.MaxFrameSize <= 0 {
		return DefaultMaxFrameSize
	}
	return c.MaxFrameSize
}

// ReadFrame reads a single frame into v.
func (c Codec) ReadFrame(r io.Reader, v any) error {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return err
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n == 0 {
		return ErrEmptyFrame
	}
	if uint64(n) > uint64(c.limit()) {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, c.limit())
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	return nil
}

// WriteFrame writes v as a single frame.
func (c Codec) WriteFrame(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("sqlmaskwire: marshal: %w", err)
	}
	if len(b) > c.limit() {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(b), c.limit())
	}

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(b)))

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ReadFrame and WriteFrame use the default frame size limit.
func ReadFrame(r io.Reader, v any) error  { return Codec{}.ReadFrame(r, v) }
func WriteFrame(w io.Writer, v any) error { return Codec{}.WriteFrame(w, v) }
