package bg3d

import (
	"encoding/binary"
	"math"
)

// decodeFunc decodes the payload of one tag. mesh is nil until the first
// Geometry record.
type decodeFunc func(r *Reader, l Layout, mesh *MeshHeader, p Pos) (Record, error)

var decoders = [numTags]decodeFunc{
	TagMaterialFlags:        decodeMaterialFlags,
	TagMaterialDiffuseColor: decodeDiffuseColor,
	TagTextureMap:           decodeTextureMap,
	TagGroupStart:           func(_ *Reader, _ Layout, _ *MeshHeader, p Pos) (Record, error) { return GroupStart{p}, nil },
	TagGroupEnd:             func(_ *Reader, _ Layout, _ *MeshHeader, p Pos) (Record, error) { return GroupEnd{p}, nil },
	TagGeometry:             decodeGeometry,
	TagVertexArray:          decodeVertexArray,
	TagNormalArray:          decodeNormalArray,
	TagUVArray:              decodeUVArray,
	TagColorArray:           decodeColorArray,
	TagTriangleArray:        decodeTriangleArray,
	TagEndFile:              func(_ *Reader, _ Layout, _ *MeshHeader, p Pos) (Record, error) { return EndFile{p}, nil },
}

func readFailed(op string, off int64, t Tag, err error) error {
	return &DecodeError{Op: op, Offset: off, Tag: t, Err: err}
}

// Tag 0
func decodeMaterialFlags(r *Reader, _ Layout, _ *MeshHeader, p Pos) (Record, error) {
	flags, err := r.ReadU32()
	if err != nil {
		return nil, readFailed("read material flags", p.PayloadOffset, TagMaterialFlags, err)
	}
	return MaterialFlags{Pos: p, Flags: flags}, nil
}

// Tag 1
func decodeDiffuseColor(r *Reader, _ Layout, _ *MeshHeader, p Pos) (Record, error) {
	b, err := r.ReadExact(16)
	if err != nil {
		return nil, readFailed("read diffuse color", p.PayloadOffset, TagMaterialDiffuseColor, err)
	}
	rec := MaterialDiffuseColor{Pos: p}
	for i := range rec.Color {
		rec.Color[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return rec, nil
}

// Tag 2
func decodeTextureMap(r *Reader, l Layout, _ *MeshHeader, p Pos) (Record, error) {
	hdr, err := r.ReadExact(uint64(l.TextureHeaderSize()))
	if err != nil {
		return nil, readFailed("read texture header", p.PayloadOffset, TagTextureMap, err)
	}

	wOff, hOff, sOff := l.TextureFieldOffsets()
	rec := TextureMap{
		Pos:        p,
		Width:      binary.BigEndian.Uint32(hdr[wOff:]),
		Height:     binary.BigEndian.Uint32(hdr[hOff:]),
		BufferSize: binary.BigEndian.Uint32(hdr[sOff:]),
	}
	if l == LayoutPadded {
		for i := range rec.Reserved {
			rec.Reserved[i] = binary.BigEndian.Uint32(hdr[8+i*4:])
		}
	}

	off := r.Pos()
	pix, err := r.ReadExact(uint64(rec.BufferSize))
	if err != nil {
		return nil, readFailed("read texture pixels", off, TagTextureMap, err)
	}
	rec.Pixels = pix
	return rec, nil
}

// Tag 5
func decodeGeometry(r *Reader, l Layout, _ *MeshHeader, p Pos) (Record, error) {
	b, err := r.ReadExact(uint64(l.MeshHeaderSize()))
	if err != nil {
		return nil, readFailed("read mesh header", p.PayloadOffset, TagGeometry, err)
	}
	mOff, fOff, pOff, tOff := l.MeshFieldOffsets()
	return Geometry{
		Pos: p,
		Mesh: MeshHeader{
			MaterialNum:  binary.BigEndian.Uint32(b[mOff:]),
			Flags:        binary.BigEndian.Uint32(b[fOff:]),
			NumPoints:    binary.BigEndian.Uint32(b[pOff:]),
			NumTriangles: binary.BigEndian.Uint32(b[tOff:]),
		},
	}, nil
}

// readArray reads count elements of size bytes for an array tag. It fails
// with ErrMissingMesh before touching the reader when no mesh is current.
func readArray(r *Reader, t Tag, mesh *MeshHeader, p Pos, count func(*MeshHeader) uint32, size uint64) ([]byte, int, error) {
	op := "read " + t.String()
	if mesh == nil {
		return nil, 0, readFailed(op, p.PayloadOffset, t, ErrMissingMesh)
	}
	n := count(mesh)
	b, err := r.ReadExact(uint64(n) * size)
	if err != nil {
		return nil, 0, readFailed(op, p.PayloadOffset, t, err)
	}
	return b, int(n), nil
}

func points(m *MeshHeader) uint32    { return m.NumPoints }
func triangles(m *MeshHeader) uint32 { return m.NumTriangles }

func f32(b []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(b)) }

func vec3s(b []byte, n int) [][3]float32 {
	out := make([][3]float32, n)
	for i := range out {
		o := i * 12
		out[i] = [3]float32{f32(b[o:]), f32(b[o+4:]), f32(b[o+8:])}
	}
	return out
}

// Tag 6
func decodeVertexArray(r *Reader, _ Layout, mesh *MeshHeader, p Pos) (Record, error) {
	b, n, err := readArray(r, TagVertexArray, mesh, p, points, 12)
	if err != nil {
		return nil, err
	}
	return VertexArray{Pos: p, Points: vec3s(b, n)}, nil
}

// Tag 7
func decodeNormalArray(r *Reader, _ Layout, mesh *MeshHeader, p Pos) (Record, error) {
	b, n, err := readArray(r, TagNormalArray, mesh, p, points, 12)
	if err != nil {
		return nil, err
	}
	return NormalArray{Pos: p, Normals: vec3s(b, n)}, nil
}

// Tag 8
func decodeUVArray(r *Reader, _ Layout, mesh *MeshHeader, p Pos) (Record, error) {
	b, n, err := readArray(r, TagUVArray, mesh, p, points, 8)
	if err != nil {
		return nil, err
	}
	uvs := make([][2]float32, n)
	for i := range uvs {
		uvs[i] = [2]float32{f32(b[i*8:]), f32(b[i*8+4:])}
	}
	return UVArray{Pos: p, UVs: uvs}, nil
}

// Tag 9
func decodeColorArray(r *Reader, _ Layout, mesh *MeshHeader, p Pos) (Record, error) {
	b, n, err := readArray(r, TagColorArray, mesh, p, points, 4)
	if err != nil {
		return nil, err
	}
	colors := make([]uint32, n)
	for i := range colors {
		colors[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return ColorArray{Pos: p, Colors: colors}, nil
}

// Tag 10
func decodeTriangleArray(r *Reader, _ Layout, mesh *MeshHeader, p Pos) (Record, error) {
	b, n, err := readArray(r, TagTriangleArray, mesh, p, triangles, 12)
	if err != nil {
		return nil, err
	}
	tris := make([][3]uint32, n)
	for i := range tris {
		o := i * 12
		tris[i] = [3]uint32{
			binary.BigEndian.Uint32(b[o:]),
			binary.BigEndian.Uint32(b[o+4:]),
			binary.BigEndian.Uint32(b[o+8:]),
		}
	}
	return TriangleArray{Pos: p, Triangles: tris}, nil
}
