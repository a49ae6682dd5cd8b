// Command bg3dbatch decodes every BG3D file in a directory and exports
// their textures and glTF summaries.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bg3d-tool/internal/batch"
	"bg3d-tool/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	dataDir := flag.String("data", "", "Directory holding .bg3d files")
	outputDir := flag.String("output", "", "Output directory (default: <data>/export)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	layout := flag.String("layout", "", "Record layout: plain or padded (default: plain)")
	formats := flag.String("formats", "", "Texture formats, comma-separated (default: bmp)")
	scale := flag.Int("scale", 0, "Integer enlargement of exported textures")
	testN := flag.Int("test", 0, "Decode only the first N files")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	if err := cfg.Resolve(config.Flags{
		Layout:    *layout,
		DataDir:   *dataDir,
		OutputDir: *outputDir,
		Formats:   *formats,
		Scale:     *scale,
		Workers:   *workers,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.DataDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no input directory. Use -data flag or config.json.")
		os.Exit(2)
	}

	files, err := batch.Find(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}

	if len(files) == 0 {
		fmt.Println("No .bg3d files found.")
		os.Exit(0)
	}

	fmt.Printf("BG3D batch export (%s layout)\n", cfg.Layout)
	fmt.Printf("Files: %d, Workers: %d, Formats: %v\n", len(files), cfg.Workers, cfg.Formats)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		DataDir:   cfg.DataDir,
		OutputDir: cfg.OutputDir,
		Layout:    cfg.DecodeLayout(),
		Formats:   cfg.Formats,
		Scale:     cfg.TextureScale,
		Workers:   cfg.Workers,
		Progress:  os.Stdout,
	}, files)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success := 0
	var failed []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Decoded: %d/%d\n", success, len(files))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.File, r.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
