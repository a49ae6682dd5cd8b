package bg3d

import "strconv"

// Tag identifies the record that follows it in the stream.
type Tag uint32

const (
	TagMaterialFlags Tag = iota
	TagMaterialDiffuseColor
	TagTextureMap
	TagGroupStart
	TagGroupEnd
	TagGeometry
	TagVertexArray
	TagNormalArray
	TagUVArray
	TagColorArray
	TagTriangleArray
	TagEndFile

	numTags
)

var tagNames = [numTags]string{
	"material flags",
	"material diffuse color",
	"texture map",
	"group start",
	"group end",
	"geometry",
	"vertex array",
	"normal array",
	"uv array",
	"color array",
	"triangle array",
	"end file",
}

// Valid reports whether t is one of the enumerated tags.
func (t Tag) Valid() bool { return t < numTags }

func (t Tag) String() string {
	if !t.Valid() {
		return "tag(" + strconv.FormatUint(uint64(t), 10) + ")"
	}
	return tagNames[t]
}
