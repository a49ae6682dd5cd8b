package bg3d

import (
	"bytes"
	"encoding/binary"
	"math"
)

// stream assembles BG3D bytes for tests.
type stream struct {
	bytes.Buffer
}

func newStream(version uint32) *stream {
	s := &stream{}
	s.header("BG3D", version)
	return s
}

func (s *stream) header(magic string, version uint32) *stream {
	var str [16]byte
	copy(str[:], magic)
	s.Write(str[:])
	return s.u32(version)
}

func (s *stream) u32(vs ...uint32) *stream {
	for _, v := range vs {
		binary.Write(&s.Buffer, binary.BigEndian, v)
	}
	return s
}

func (s *stream) f32(vs ...float32) *stream {
	for _, v := range vs {
		s.u32(math.Float32bits(v))
	}
	return s
}

func (s *stream) zeros(n int) *stream {
	s.Write(make([]byte, n))
	return s
}

func (s *stream) tag(t Tag) *stream { return s.u32(uint32(t)) }

func (s *stream) mesh(l Layout, material, flags, points, tris uint32) *stream {
	s.tag(TagGeometry).u32(material, flags)
	if l == LayoutPadded {
		s.zeros(meshReservedMid)
	}
	s.u32(points, tris)
	if l == LayoutPadded {
		s.zeros(meshReservedTail)
	}
	return s
}

func (s *stream) texture(l Layout, w, h uint32, pix []byte) *stream {
	s.tag(TagTextureMap).u32(w, h)
	if l == LayoutPadded {
		s.u32(0xAAAA, 0xBBBB)
	}
	s.u32(uint32(len(pix)))
	if l == LayoutPadded {
		s.zeros(textureReservedTail)
	}
	s.Write(pix)
	return s
}

func (s *stream) reader() *bytes.Reader { return bytes.NewReader(s.Bytes()) }

// collector is a Sink that keeps everything it is given.
type collector struct {
	header  FileHeader
	records []Record
	failOn  Tag
	failErr error
}

func (c *collector) Header(h FileHeader) error {
	c.header = h
	return nil
}

func (c *collector) Record(r Record) error {
	if c.failErr != nil && r.Tag() == c.failOn {
		return c.failErr
	}
	c.records = append(c.records, r)
	return nil
}
