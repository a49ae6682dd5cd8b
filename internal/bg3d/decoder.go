package bg3d

import (
	"fmt"
	"io"
)

// State is the dispatcher's position in the decode.
type State int

const (
	StateAwaitingTag State = iota
	StateDecodingRecord
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAwaitingTag:
		return "awaiting tag"
	case StateDecodingRecord:
		return "decoding record"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLayout selects the header variant for the whole session.
func WithLayout(l Layout) Option {
	return func(d *Decoder) { d.layout = l }
}

// Decoder walks the tagged records of one BG3D stream. It is not safe for
// concurrent use; each stream gets its own Decoder.
type Decoder struct {
	r      *Reader
	layout Layout

	headerRead bool
	state      State
	err        error

	mesh    MeshHeader
	hasMesh bool
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: NewReader(src)}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Layout returns the header variant in use.
func (d *Decoder) Layout() Layout { return d.layout }

// State returns the current state.
func (d *Decoder) State() State { return d.state }

// Pos returns the number of bytes consumed.
func (d *Decoder) Pos() int64 { return d.r.Pos() }

// Mesh returns the current-mesh context, if a Geometry record has been seen.
func (d *Decoder) Mesh() (MeshHeader, bool) { return d.mesh, d.hasMesh }

// Header reads and validates the file header. It must be called exactly
// once, before Next.
func (d *Decoder) Header() (FileHeader, error) {
	if d.headerRead {
		return FileHeader{}, ErrHeaderRead
	}
	d.headerRead = true
	h, err := ReadHeader(d.r)
	if err != nil {
		d.fail(err)
		return FileHeader{}, err
	}
	return h, nil
}

// Next decodes one record. After the EndFile record it returns io.EOF; after
// a failure it keeps returning the same error.
func (d *Decoder) Next() (Record, error) {
	switch {
	case !d.headerRead:
		return nil, ErrHeaderRead
	case d.state == StateFailed:
		return nil, d.err
	case d.state == StateDone:
		return nil, io.EOF
	}

	tagOff := d.r.Pos()
	v, err := d.r.ReadU32()
	if err != nil {
		return nil, d.fail(&DecodeError{Op: "read tag", Offset: tagOff, Err: err})
	}
	t := Tag(v)
	if !t.Valid() {
		return nil, d.fail(&DecodeError{Op: "dispatch tag", Offset: tagOff, Tag: t, Value: v, Err: ErrUnknownTag})
	}

	d.state = StateDecodingRecord
	var mesh *MeshHeader
	if d.hasMesh {
		m := d.mesh
		mesh = &m
	}
	rec, err := decoders[t](d.r, d.layout, mesh, Pos{TagOffset: tagOff, PayloadOffset: d.r.Pos()})
	if err != nil {
		return nil, d.fail(err)
	}

	switch rec := rec.(type) {
	case Geometry:
		d.mesh, d.hasMesh = rec.Mesh, true
	case EndFile:
		d.state = StateDone
		return rec, nil
	}
	d.state = StateAwaitingTag
	return rec, nil
}

func (d *Decoder) fail(err error) error {
	d.state = StateFailed
	d.err = err
	return err
}

// Decode reads the header and every record of src, handing each to sink.
// It stops at the EndFile record or at the first error, whether from the
// stream or from the sink.
func Decode(src io.Reader, sink Sink, opts ...Option) (FileHeader, error) {
	if sink == nil {
		sink = MultiSink()
	}
	d := NewDecoder(src, opts...)

	h, err := d.Header()
	if err != nil {
		return FileHeader{}, err
	}
	if err := sink.Header(h); err != nil {
		return h, fmt.Errorf("bg3d: sink header: %w", err)
	}

	for {
		rec, err := d.Next()
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return h, err
		}
		if err := sink.Record(rec); err != nil {
			return h, fmt.Errorf("bg3d: sink %s at 0x%x: %w", rec.Tag(), rec.Position().TagOffset, err)
		}
	}
}
