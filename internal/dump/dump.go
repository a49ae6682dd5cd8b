// Package dump prints a field-by-field listing of a BG3D stream with the
// byte offset of every value, one line per field.
package dump

import (
	"fmt"
	"io"

	"bg3d-tool/internal/bg3d"
)

// Dumper is a bg3d.Sink that writes the listing to w.
type Dumper struct {
	w      io.Writer
	layout bg3d.Layout
}

// New returns a Dumper. layout must match the decoder's so that padded
// field offsets come out right.
func New(w io.Writer, layout bg3d.Layout) *Dumper {
	return &Dumper{w: w, layout: layout}
}

func (d *Dumper) line(off int64, format string, args ...any) error {
	_, err := fmt.Fprintf(d.w, "%8x: "+format+"\n", append([]any{off}, args...)...)
	return err
}

func (d *Dumper) Header(h bg3d.FileHeader) error {
	if _, err := fmt.Fprintf(d.w, "Header: %s\n", h.Text()); err != nil {
		return err
	}
	return d.line(bg3d.HeaderSize-4, "%d (version)", h.Version)
}

func (d *Dumper) Record(rec bg3d.Record) error {
	p := rec.Position()
	if err := d.line(p.TagOffset, "%d (tag)", uint32(rec.Tag())); err != nil {
		return err
	}
	off := p.PayloadOffset

	switch r := rec.(type) {
	case bg3d.MaterialFlags:
		return d.line(off, "%d (flags)", r.Flags)

	case bg3d.MaterialDiffuseColor:
		for i, name := range [4]string{"r", "g", "b", "a"} {
			if err := d.line(off+int64(i*4), "%x (diffuse color %s)", r.Color[i], name); err != nil {
				return err
			}
		}
		return nil

	case bg3d.TextureMap:
		w, h, s := d.layout.TextureFieldOffsets()
		lines := []struct {
			at     int
			format string
			v      uint32
		}{
			{w, "%d (width)", r.Width},
			{h, "%d (height)", r.Height},
			{s, "0x%x (size)", r.BufferSize},
		}
		for _, l := range lines {
			if err := d.line(off+int64(l.at), l.format, l.v); err != nil {
				return err
			}
		}
		return d.line(off+int64(d.layout.TextureHeaderSize()), "Beginning of Texture Data")

	case bg3d.Geometry:
		m, f, np, nt := d.layout.MeshFieldOffsets()
		lines := []struct {
			at   int
			name string
			v    uint32
		}{
			{m, "materialNum", r.Mesh.MaterialNum},
			{f, "flags", r.Mesh.Flags},
			{np, "numPoints", r.Mesh.NumPoints},
			{nt, "numTriangles", r.Mesh.NumTriangles},
		}
		for _, l := range lines {
			if err := d.line(off+int64(l.at), "%d (%s)", l.v, l.name); err != nil {
				return err
			}
		}
		return nil

	case bg3d.VertexArray:
		return d.line(off, "%d (vertices)", len(r.Points))
	case bg3d.NormalArray:
		return d.line(off, "%d (normals)", len(r.Normals))
	case bg3d.UVArray:
		return d.line(off, "%d (uvs)", len(r.UVs))
	case bg3d.ColorArray:
		return d.line(off, "%d (colors)", len(r.Colors))
	case bg3d.TriangleArray:
		return d.line(off, "%d (triangles)", len(r.Triangles))
	}
	return nil
}
