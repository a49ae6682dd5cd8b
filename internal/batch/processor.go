package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"bg3d-tool/internal/bg3d"
	"bg3d-tool/internal/scene"
	"bg3d-tool/internal/texture"
)

// Ext is the file extension Find looks for, matched case-insensitively.
const Ext = ".bg3d"

// Config holds all shared settings for a batch run.
type Config struct {
	DataDir   string
	OutputDir string
	Layout    bg3d.Layout
	Formats   []string
	Scale     int
	Workers   int
	Progress  io.Writer // nil disables the progress reporter
}

// Result holds the outcome of decoding one file.
type Result struct {
	File    string         // path relative to DataDir
	Version uint32         // header version, zero if the header failed
	Records map[string]int // record counts by tag name
	Files   []string       // exported files relative to OutputDir
	Success bool
	Error   string
}

// Find lists the BG3D files directly under dir, sorted by name.
func Find(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Ext) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// Run decodes all files using a worker pool. files are relative to
// cfg.DataDir; results come back in the same order.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f files/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, name string) Result {
	res := Result{File: name}

	f, err := os.Open(filepath.Join(cfg.DataDir, name))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	outDir := filepath.Join(cfg.OutputDir, stem)

	formats := cfg.Formats
	if len(formats) == 0 {
		formats = []string{texture.FormatBMP}
	}
	stats := &bg3d.Stats{}
	exporter := &texture.Exporter{
		Base:    filepath.Join(outDir, stem),
		Formats: formats,
		Scale:   cfg.Scale,
	}
	builder := &scene.Builder{
		ImageURI: func(n int) string { return texture.FileName(stem, n, formats[0]) },
	}

	_, err = bg3d.Decode(bufio.NewReader(f), bg3d.MultiSink(stats, exporter, builder), bg3d.WithLayout(cfg.Layout))
	res.Version = stats.File.Version
	res.Records = stats.Map()
	res.Files = append(res.Files, exporter.Files()...)
	if err != nil {
		res.Error = err.Error()
		res.Files = relative(cfg.OutputDir, res.Files)
		return res
	}

	gltf := filepath.Join(outDir, stem+".gltf")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		res.Error = err.Error()
		res.Files = relative(cfg.OutputDir, res.Files)
		return res
	}
	if err := builder.Write(gltf); err != nil {
		res.Error = err.Error()
		res.Files = relative(cfg.OutputDir, res.Files)
		return res
	}
	res.Files = relative(cfg.OutputDir, append(res.Files, gltf))
	res.Success = true
	return res
}

func relative(base string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(base, p)
		if err != nil {
			rel = p
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}
