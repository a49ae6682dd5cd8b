package scene

// Document is the glTF 2.0 subset written for a decoded file. Mesh and
// material bindings are not produced; geometry is described by accessors
// and the per-geometry summary in Extras.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
type Document struct {
	Asset       Asset        `json:"asset"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Accessors   []Accessor   `json:"accessors,omitempty"`
	Images      []Image      `json:"images,omitempty"`
	Extras      *Extras      `json:"extras,omitempty"`
}

// Asset holds metadata about the asset. Version is always "2.0".
type Asset struct {
	Version   string      `json:"version"`
	Generator string      `json:"generator,omitempty"`
	Extras    *AssetExtra `json:"extras,omitempty"`
}

// AssetExtra records the source file's header.
type AssetExtra struct {
	Header      string `json:"bg3dHeader"`
	FileVersion uint32 `json:"bg3dVersion"`
}

// Buffer is raw binary data, embedded as a base64 data URI.
type Buffer struct {
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri,omitempty"`
}

// BufferView is a slice of a buffer.
type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset,omitempty"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

// Accessor describes how to read a buffer view.
type Accessor struct {
	Name          string    `json:"name,omitempty"`
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Normalized    bool      `json:"normalized,omitempty"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
}

// Image references an exported texture file.
type Image struct {
	URI string `json:"uri"`
}

// Extras summarise records that have no glTF counterpart.
type Extras struct {
	Materials  []Material `json:"materials,omitempty"`
	Geometries []Geometry `json:"geometries,omitempty"`
	Groups     int        `json:"groups,omitempty"`
}

// Material collects the material records in stream order. DiffuseColor
// holds the raw words as stored.
type Material struct {
	Flags        uint32   `json:"flags"`
	DiffuseColor []uint32 `json:"diffuseColor,omitempty"`
	Textures     []int    `json:"textures,omitempty"` // indices into Images
}

// Geometry summarises one Geometry record and the arrays that followed it.
// Accessors maps glTF attribute names (POSITION, NORMAL, TEXCOORD_0,
// COLOR_0, indices) to accessor indices.
type Geometry struct {
	MaterialNum  uint32         `json:"materialNum"`
	Flags        uint32         `json:"flags"`
	NumPoints    uint32         `json:"numPoints"`
	NumTriangles uint32         `json:"numTriangles"`
	Accessors    map[string]int `json:"accessors,omitempty"`
}

const (
	componentUnsignedByte = 5121
	componentUnsignedInt  = 5125
	componentFloat        = 5126

	targetArrayBuffer        = 34962
	targetElementArrayBuffer = 34963
)
