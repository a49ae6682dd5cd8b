package bg3d

import (
	"fmt"
	"strings"
)

// Layout selects between the two vendor variants of the texture and mesh
// headers. The padded variant carries reserved fields around the counts.
type Layout int

const (
	LayoutPlain Layout = iota
	LayoutPadded
)

// Padded variant reserved areas, in bytes.
const (
	textureReservedWords = 2  // u32 words between height and bufferSize
	textureReservedTail  = 16 // bytes after bufferSize
	meshReservedMid      = 20 // bytes between flags and numPoints
	meshReservedTail     = 16 // bytes after numTriangles
)

// ParseLayout accepts "plain" or "padded" (case-insensitive). An empty
// string selects LayoutPlain.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return LayoutPlain, nil
	case "padded":
		return LayoutPadded, nil
	}
	return LayoutPlain, fmt.Errorf("bg3d: unknown layout %q (want plain or padded)", s)
}

func (l Layout) String() string {
	if l == LayoutPadded {
		return "padded"
	}
	return "plain"
}

// TextureHeaderSize is the byte length of a TextureMap header.
func (l Layout) TextureHeaderSize() int {
	if l == LayoutPadded {
		return 12 + textureReservedWords*4 + textureReservedTail
	}
	return 12
}

// MeshHeaderSize is the byte length of a Geometry record.
func (l Layout) MeshHeaderSize() int {
	if l == LayoutPadded {
		return 16 + meshReservedMid + meshReservedTail
	}
	return 16
}

// TextureFieldOffsets returns the offsets of width, height and bufferSize
// relative to the start of the texture header.
func (l Layout) TextureFieldOffsets() (width, height, size int) {
	if l == LayoutPadded {
		return 0, 4, 8 + textureReservedWords*4
	}
	return 0, 4, 8
}

// MeshFieldOffsets returns the offsets of materialNum, flags, numPoints and
// numTriangles relative to the start of the mesh header.
func (l Layout) MeshFieldOffsets() (material, flags, points, triangles int) {
	if l == LayoutPadded {
		return 0, 4, 8 + meshReservedMid, 12 + meshReservedMid
	}
	return 0, 4, 8, 12
}
