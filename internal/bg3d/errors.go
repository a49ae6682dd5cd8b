package bg3d

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when fewer bytes remain than a record requires.
	ErrTruncated = errors.New("truncated input")
	// ErrBadMagic is returned when the header does not start with "BG3D".
	ErrBadMagic = errors.New("bad magic")
	// ErrUnknownTag is returned for a tag value outside 0..11.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrMissingMesh is returned when an array record appears before any
	// Geometry record.
	ErrMissingMesh = errors.New("array record without geometry")
	// ErrShortPixels is returned by TextureMap.Texels when the pixel buffer
	// holds fewer than width*height RGB triples.
	ErrShortPixels = errors.New("pixel buffer shorter than width*height*3")
	// ErrHeaderRead is returned when the header is read twice, or records
	// are requested before the header.
	ErrHeaderRead = errors.New("header must be read exactly once before records")
)

// DecodeError describes which read failed and where.
type DecodeError struct {
	Op     string // e.g. "read tag", "read vertex array"
	Offset int64  // byte offset of the failed read
	Tag    Tag    // tag being decoded, valid when Op is not a header read
	Value  uint32 // raw tag value for ErrUnknownTag
	Err    error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrUnknownTag) {
		return fmt.Sprintf("bg3d: %s at 0x%x: %v %d", e.Op, e.Offset, e.Err, e.Value)
	}
	return fmt.Sprintf("bg3d: %s at 0x%x: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
