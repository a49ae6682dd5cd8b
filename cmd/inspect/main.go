// Command inspect prints record counts and per-mesh bounds of BG3D files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"bg3d-tool/internal/bg3d"
	"bg3d-tool/internal/scene"
)

func main() {
	layoutName := flag.String("layout", "plain", "Record layout: plain or padded")
	flag.Parse()

	layout, err := bg3d.ParseLayout(*layoutName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [-layout plain|padded] file.bg3d...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := inspect(os.Stdout, path, layout); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(w io.Writer, path string, layout bg3d.Layout) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d := bg3d.NewDecoder(bufio.NewReader(f), bg3d.WithLayout(layout))
	h, err := d.Header()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n=== %s (%q version %d) ===\n", path, h.Text(), h.Version)

	var stats bg3d.Stats
	meshes := 0
	for {
		rec, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		stats.Record(rec)

		switch r := rec.(type) {
		case bg3d.Geometry:
			fmt.Fprintf(w, "  Mesh[%d]: material=%d flags=%#x points=%d tris=%d\n",
				meshes, r.Mesh.MaterialNum, r.Mesh.Flags, r.Mesh.NumPoints, r.Mesh.NumTriangles)
			meshes++
		case bg3d.VertexArray:
			if len(r.Points) == 0 {
				continue
			}
			lo, hi := scene.Bounds(r.Points)
			fmt.Fprintf(w, "    BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
		case bg3d.TextureMap:
			fmt.Fprintf(w, "  Texture: %dx%d (%d bytes)\n", r.Width, r.Height, r.BufferSize)
		}
	}

	fmt.Fprintln(w, "  Records:")
	for t := bg3d.TagMaterialFlags; t <= bg3d.TagEndFile; t++ {
		if n := stats.Counts[t]; n > 0 {
			fmt.Fprintf(w, "    %-24s %d\n", t, n)
		}
	}
	fmt.Fprintf(w, "  Totals: %d vertices, %d triangles, %d texels\n", stats.Points, stats.Triangles, stats.Texels)
	return nil
}
