// Package scene accumulates a glTF-shaped summary of a decoded BG3D file.
package scene

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"

	"bg3d-tool/internal/bg3d"
)

// DefaultGenerator is written to asset.generator when Builder.Generator is
// empty.
const DefaultGenerator = "bg3d-tool"

// Builder is a bg3d.Sink that builds a Document.
type Builder struct {
	Generator string
	// ImageURI names the n-th texture's exported file. When nil, textures
	// are counted against materials but no images are listed.
	ImageURI func(n int) string

	doc      Document
	extras   Extras
	textures int
}

// Document returns the document built so far.
func (b *Builder) Document() Document {
	doc := b.doc
	doc.Asset.Version = "2.0"
	doc.Asset.Generator = b.Generator
	if doc.Asset.Generator == "" {
		doc.Asset.Generator = DefaultGenerator
	}
	if len(b.extras.Materials) > 0 || len(b.extras.Geometries) > 0 || b.extras.Groups > 0 {
		extras := b.extras
		doc.Extras = &extras
	}
	return doc
}

func (b *Builder) Header(h bg3d.FileHeader) error {
	b.doc.Asset.Extras = &AssetExtra{Header: h.Text(), FileVersion: h.Version}
	return nil
}

func (b *Builder) Record(rec bg3d.Record) error {
	switch r := rec.(type) {
	case bg3d.MaterialFlags:
		b.extras.Materials = append(b.extras.Materials, Material{Flags: r.Flags})

	case bg3d.MaterialDiffuseColor:
		m := b.material()
		m.DiffuseColor = append([]uint32(nil), r.Color[:]...)

	case bg3d.TextureMap:
		n := b.textures
		b.textures++
		if b.ImageURI == nil {
			return nil
		}
		b.doc.Images = append(b.doc.Images, Image{URI: b.ImageURI(n)})
		m := b.material()
		m.Textures = append(m.Textures, len(b.doc.Images)-1)

	case bg3d.GroupStart:
		b.extras.Groups++

	case bg3d.Geometry:
		b.extras.Geometries = append(b.extras.Geometries, Geometry{
			MaterialNum:  r.Mesh.MaterialNum,
			Flags:        r.Mesh.Flags,
			NumPoints:    r.Mesh.NumPoints,
			NumTriangles: r.Mesh.NumTriangles,
		})

	case bg3d.VertexArray:
		if len(r.Points) == 0 {
			return nil
		}
		min, max := Bounds(r.Points)
		acc := b.addAccessor(vec3Bytes(r.Points), targetArrayBuffer, Accessor{
			Name:          "POSITION",
			ComponentType: componentFloat,
			Count:         len(r.Points),
			Type:          "VEC3",
			Min:           min[:],
			Max:           max[:],
		})
		return b.bind("POSITION", acc)

	case bg3d.NormalArray:
		if len(r.Normals) == 0 {
			return nil
		}
		acc := b.addAccessor(vec3Bytes(r.Normals), targetArrayBuffer, Accessor{
			Name:          "NORMAL",
			ComponentType: componentFloat,
			Count:         len(r.Normals),
			Type:          "VEC3",
		})
		return b.bind("NORMAL", acc)

	case bg3d.UVArray:
		if len(r.UVs) == 0 {
			return nil
		}
		buf := make([]byte, 0, len(r.UVs)*8)
		for _, uv := range r.UVs {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(uv[0]))
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(uv[1]))
		}
		acc := b.addAccessor(buf, targetArrayBuffer, Accessor{
			Name:          "TEXCOORD_0",
			ComponentType: componentFloat,
			Count:         len(r.UVs),
			Type:          "VEC2",
		})
		return b.bind("TEXCOORD_0", acc)

	case bg3d.ColorArray:
		if len(r.Colors) == 0 {
			return nil
		}
		// Colour words keep their byte order: one RGBA byte quad per point.
		buf := make([]byte, 0, len(r.Colors)*4)
		for _, c := range r.Colors {
			buf = binary.BigEndian.AppendUint32(buf, c)
		}
		acc := b.addAccessor(buf, targetArrayBuffer, Accessor{
			Name:          "COLOR_0",
			ComponentType: componentUnsignedByte,
			Normalized:    true,
			Count:         len(r.Colors),
			Type:          "VEC4",
		})
		return b.bind("COLOR_0", acc)

	case bg3d.TriangleArray:
		if len(r.Triangles) == 0 {
			return nil
		}
		buf := make([]byte, 0, len(r.Triangles)*12)
		for _, t := range r.Triangles {
			for _, i := range t {
				buf = binary.LittleEndian.AppendUint32(buf, i)
			}
		}
		acc := b.addAccessor(buf, targetElementArrayBuffer, Accessor{
			Name:          "indices",
			ComponentType: componentUnsignedInt,
			Count:         len(r.Triangles) * 3,
			Type:          "SCALAR",
		})
		return b.bind("indices", acc)
	}
	return nil
}

// material returns the latest material, starting one if the stream
// carried material data before any flags record.
func (b *Builder) material() *Material {
	if len(b.extras.Materials) == 0 {
		b.extras.Materials = append(b.extras.Materials, Material{})
	}
	return &b.extras.Materials[len(b.extras.Materials)-1]
}

func (b *Builder) addAccessor(data []byte, target int, acc Accessor) int {
	b.doc.Buffers = append(b.doc.Buffers, Buffer{
		ByteLength: len(data),
		URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data),
	})
	b.doc.BufferViews = append(b.doc.BufferViews, BufferView{
		Buffer:     len(b.doc.Buffers) - 1,
		ByteLength: len(data),
		Target:     target,
	})
	acc.BufferView = len(b.doc.BufferViews) - 1
	b.doc.Accessors = append(b.doc.Accessors, acc)
	return len(b.doc.Accessors) - 1
}

// bind attaches an accessor to the current geometry. The decoder already
// rejects arrays before the first Geometry record, so a missing geometry
// here means the records did not come from a Decoder.
func (b *Builder) bind(name string, acc int) error {
	if len(b.extras.Geometries) == 0 {
		return fmt.Errorf("scene: %s array without geometry", name)
	}
	g := &b.extras.Geometries[len(b.extras.Geometries)-1]
	if g.Accessors == nil {
		g.Accessors = make(map[string]int)
	}
	g.Accessors[name] = acc
	return nil
}

// Encode writes the document as indented JSON followed by a newline.
func (b *Builder) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(b.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("scene: marshal: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Write saves the document to path.
func (b *Builder) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	if err := b.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return f.Close()
}

// Bounds returns the per-axis minimum and maximum of points, ignoring NaN
// and infinite components. An axis with no finite value is zero.
func Bounds(points [][3]float32) (min, max [3]float32) {
	for k := 0; k < 3; k++ {
		min[k], max[k] = math32.Inf(1), math32.Inf(-1)
	}
	for _, p := range points {
		for k := 0; k < 3; k++ {
			if math32.IsNaN(p[k]) || math32.IsInf(p[k], 0) {
				continue
			}
			min[k] = math32.Min(min[k], p[k])
			max[k] = math32.Max(max[k], p[k])
		}
	}
	for k := 0; k < 3; k++ {
		if min[k] > max[k] {
			min[k], max[k] = 0, 0
		}
	}
	return min, max
}

func vec3Bytes(vs [][3]float32) []byte {
	buf := make([]byte, 0, len(vs)*12)
	for _, v := range vs {
		for _, c := range v {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
		}
	}
	return buf
}
