package bg3d

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Magic is the signature at the start of every BG3D file. Only these four
// bytes of the 16-byte header string are checked.
const Magic = "BG3D"

const (
	headerStringLen = 16
	// HeaderSize is the byte length of the file header.
	HeaderSize = headerStringLen + 4
)

// FileHeader is the fixed 20-byte preamble.
type FileHeader struct {
	Raw     [headerStringLen]byte
	Version uint32
}

// Text returns the header string decoded as Mac OS Roman, with NUL padding
// and trailing spaces removed.
func (h FileHeader) Text() string {
	raw := h.Raw[:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	decoded, err := charmap.Macintosh.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	return strings.TrimSpace(string(decoded))
}

// ReadHeader consumes and validates the file header.
func ReadHeader(r *Reader) (FileHeader, error) {
	var h FileHeader

	off := r.Pos()
	s, err := r.ReadExact(headerStringLen)
	if err != nil {
		return FileHeader{}, &DecodeError{Op: "read header string", Offset: off, Err: err}
	}

	off = r.Pos()
	v, err := r.ReadExact(4)
	if err != nil {
		return FileHeader{}, &DecodeError{Op: "read header version", Offset: off, Err: err}
	}

	if string(s[:len(Magic)]) != Magic {
		return FileHeader{}, &DecodeError{Op: "check header magic", Offset: 0, Err: ErrBadMagic}
	}

	copy(h.Raw[:], s)
	h.Version = binary.BigEndian.Uint32(v)
	return h, nil
}
