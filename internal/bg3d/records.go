package bg3d

// Pos locates a record in the stream.
type Pos struct {
	TagOffset     int64 // offset of the 4-byte tag
	PayloadOffset int64 // offset of the first payload byte
}

// Position returns the record's offsets.
func (p Pos) Position() Pos { return p }

// Record is one decoded tagged record. The concrete types below are the
// only implementations.
type Record interface {
	Tag() Tag
	Position() Pos
}

// MeshHeader is the current-mesh context. Array records are sized by the
// most recent one.
type MeshHeader struct {
	MaterialNum  uint32 // index into the file's materials, not resolved here
	Flags        uint32
	NumPoints    uint32
	NumTriangles uint32
}

type MaterialFlags struct {
	Pos
	Flags uint32
}

// MaterialDiffuseColor holds the raw r, g, b, a words as stored. They are
// not normalised floats.
type MaterialDiffuseColor struct {
	Pos
	Color [4]uint32
}

// TextureMap is a texture header plus its raw pixel payload, 3 bytes per
// texel.
type TextureMap struct {
	Pos
	Width      uint32
	Height     uint32
	Reserved   [textureReservedWords]uint32 // padded layout only
	BufferSize uint32
	Pixels     []byte
}

type GroupStart struct{ Pos }

type GroupEnd struct{ Pos }

type Geometry struct {
	Pos
	Mesh MeshHeader
}

type VertexArray struct {
	Pos
	Points [][3]float32
}

type NormalArray struct {
	Pos
	Normals [][3]float32
}

type UVArray struct {
	Pos
	UVs [][2]float32
}

// ColorArray holds one raw colour word per point.
type ColorArray struct {
	Pos
	Colors []uint32
}

type TriangleArray struct {
	Pos
	Triangles [][3]uint32
}

type EndFile struct{ Pos }

func (MaterialFlags) Tag() Tag        { return TagMaterialFlags }
func (MaterialDiffuseColor) Tag() Tag { return TagMaterialDiffuseColor }
func (TextureMap) Tag() Tag           { return TagTextureMap }
func (GroupStart) Tag() Tag           { return TagGroupStart }
func (GroupEnd) Tag() Tag             { return TagGroupEnd }
func (Geometry) Tag() Tag             { return TagGeometry }
func (VertexArray) Tag() Tag          { return TagVertexArray }
func (NormalArray) Tag() Tag          { return TagNormalArray }
func (UVArray) Tag() Tag              { return TagUVArray }
func (ColorArray) Tag() Tag           { return TagColorArray }
func (TriangleArray) Tag() Tag        { return TagTriangleArray }
func (EndFile) Tag() Tag              { return TagEndFile }

// Texels returns the first Width*Height RGB triples of the pixel buffer in
// stream order: the outer index runs over Width, the inner over Height.
func (t TextureMap) Texels() ([][3]byte, error) {
	n := uint64(t.Width) * uint64(t.Height)
	if n > uint64(len(t.Pixels))/3 {
		return nil, ErrShortPixels
	}
	out := make([][3]byte, n)
	for i := range out {
		copy(out[i][:], t.Pixels[i*3:i*3+3])
	}
	return out, nil
}
