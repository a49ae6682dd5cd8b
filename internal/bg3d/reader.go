package bg3d

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// readChunk bounds the up-front allocation for a single read. Longer
// payloads grow as bytes actually arrive, so a corrupt length field fails
// with ErrTruncated instead of exhausting memory.
const readChunk = 1 << 20

// Reader is a forward-only cursor over a BG3D stream. All multi-byte
// values are big-endian on the wire.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader wraps r. No buffering is added.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int64 { return r.pos }

// ReadExact reads exactly n bytes. If the source ends first it returns
// ErrTruncated; the bytes that did arrive still count towards Pos.
func (r *Reader) ReadExact(n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n > math.MaxInt64 {
		return nil, ErrTruncated
	}
	if n <= readChunk {
		buf := make([]byte, n)
		got, err := io.ReadFull(r.r, buf)
		r.pos += int64(got)
		if err != nil {
			return nil, readErr(err)
		}
		return buf, nil
	}

	var buf bytes.Buffer
	buf.Grow(readChunk)
	got, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += got
	if err != nil {
		return nil, readErr(err)
	}
	return buf.Bytes(), nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadF32 reads a big-endian IEEE-754 float32.
func (r *Reader) ReadF32() (float32, error) {
	u, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
