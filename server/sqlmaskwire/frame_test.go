package sqlmaskwire

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_WriteRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, AnonymizeRequest{ID: 7, SQL: "SELECT a FROM t"}))
	require.NoError(t, WriteFrame(&buf, AnonymizeRequest{ID: 8, SQL: "SELECT b FROM t"}))

	var got AnonymizeRequest
	require.NoError(t, ReadFrame(&buf, &got))
	assert.Equal(t, AnonymizeRequest{ID: 7, SQL: "SELECT a FROM t"}, got)
	require.NoError(t, ReadFrame(&buf, &got))
	assert.Equal(t, uint64(8), got.ID)

	require.ErrorIs(t, ReadFrame(&buf, &got), io.EOF)
}

func TestFrame_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, map[string]int{"a": 1}))

	b := buf.Bytes()
	n := binary.BigEndian.Uint32(b[:4])
	assert.Equal(t, `{"a":1}`, string(b[4:4+n]))
}

func TestFrame_Errors(t *testing.T) {
	var v AnonymizeRequest

	err := ReadFrame(bytes.NewReader([]byte{0, 0, 0, 0}), &v)
	require.ErrorIs(t, err, ErrEmptyFrame)

	small := Codec{MaxFrameSize: 8}
	err = small.ReadFrame(bytes.NewReader([]byte{0, 0, 0, 9}), &v)
	require.ErrorIs(t, err, ErrFrameTooLarge)

	err = small.WriteFrame(io.Discard, AnonymizeRequest{SQL: "SELECT a FROM t"})
	require.ErrorIs(t, err, ErrFrameTooLarge)

	err = ReadFrame(bytes.NewReader([]byte{0, 0, 0, 2, '{', '{'}), &v)
	require.ErrorIs(t, err, ErrBadJSON)

	err = ReadFrame(bytes.NewReader([]byte{0, 0, 0, 5, '{'}), &v)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
