// Command bg3d decodes a BG3D model file. With -r it prints every field
// and its offset; with -o it exports the textures and a glTF summary.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bg3d-tool/internal/bg3d"
	"bg3d-tool/internal/config"
	"bg3d-tool/internal/dump"
	"bg3d-tool/internal/scene"
	"bg3d-tool/internal/texture"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return 2
	}

	// Load config
	var cfg config.Config
	if opts.configFile != "" {
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}
	if err := cfg.Resolve(config.Flags{
		Layout:  opts.layout,
		Formats: opts.formats,
		Scale:   opts.scale,
	}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	layout := cfg.DecodeLayout()

	f, err := os.Open(opts.input)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening file: %v\n", err)
		return 1
	}
	defer f.Close()

	stats := &bg3d.Stats{}
	sinks := []bg3d.Sink{stats}

	var out *bufio.Writer
	if opts.raw {
		out = bufio.NewWriter(stdout)
		sinks = append(sinks, dump.New(out, layout))
	}

	var exporter *texture.Exporter
	var builder *scene.Builder
	if opts.output != "" {
		exporter = &texture.Exporter{
			Base:    opts.output,
			Formats: cfg.Formats,
			Scale:   cfg.TextureScale,
		}
		base := filepath.Base(opts.output)
		builder = &scene.Builder{
			ImageURI: func(n int) string { return texture.FileName(base, n, cfg.Formats[0]) },
		}
		sinks = append(sinks, exporter, builder)
	}

	_, err = bg3d.Decode(bufio.NewReader(f), bg3d.MultiSink(sinks...), bg3d.WithLayout(layout))
	if out != nil {
		out.Flush()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if builder != nil {
		gltf := opts.output + ".gltf"
		if err := builder.Write(gltf); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for _, p := range exporter.Files() {
			fmt.Fprintf(stdout, "Wrote %s\n", p)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", gltf)
	}

	if !opts.raw && builder == nil {
		fmt.Fprintf(stdout, "%s: version %d, %d meshes, %d textures, %d vertices, %d triangles\n",
			opts.input, stats.File.Version,
			stats.Counts[bg3d.TagGeometry], stats.Counts[bg3d.TagTextureMap],
			stats.Points, stats.Triangles)
	}
	return 0
}
