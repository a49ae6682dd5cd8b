package bg3d

// Stats is a Sink that counts records by tag and totals the array lengths.
type Stats struct {
	File   FileHeader
	Counts [numTags]int

	Points    int // vertex array entries
	Triangles int // triangle array entries
	Texels    uint64 // texture pixels
}

func (s *Stats) Header(h FileHeader) error {
	s.File = h
	return nil
}

func (s *Stats) Record(rec Record) error {
	s.Counts[rec.Tag()]++
	switch r := rec.(type) {
	case VertexArray:
		s.Points += len(r.Points)
	case TriangleArray:
		s.Triangles += len(r.Triangles)
	case TextureMap:
		s.Texels += uint64(r.Width) * uint64(r.Height)
	}
	return nil
}

// Map returns the non-zero counts keyed by tag name.
func (s *Stats) Map() map[string]int {
	m := make(map[string]int)
	for t, n := range s.Counts {
		if n > 0 {
			m[Tag(t).String()] = n
		}
	}
	return m
}
