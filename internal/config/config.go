package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"bg3d-tool/internal/bg3d"
	"bg3d-tool/internal/texture"
)

// Config holds decode and export settings.
type Config struct {
	// Decode
	Layout string `json:"layout"` // "plain" or "padded"

	// Paths
	DataDir   string `json:"data_dir"`   // batch input directory
	OutputDir string `json:"output_dir"` // batch output directory

	// Export settings
	Formats      []string `json:"formats"`       // texture formats: bmp, tga, webp
	TextureScale int      `json:"texture_scale"` // integer enlargement of exported textures
	Workers      int      `json:"workers"`

	layout bg3d.Layout
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Layout    string
	DataDir   string
	OutputDir string
	Formats   string // comma-separated
	Scale     int
	Workers   int
}

// Resolve applies flag overrides, fills defaults and validates the result.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Layout != "" {
		c.Layout = flags.Layout
	}
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Formats != "" {
		c.Formats = strings.Split(flags.Formats, ",")
	}
	if flags.Scale > 0 {
		c.TextureScale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	layout, err := bg3d.ParseLayout(c.Layout)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.layout = layout
	c.Layout = layout.String()

	// Output next to the input data unless told otherwise
	if c.DataDir != "" {
		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(c.DataDir, "export")
		} else if !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.DataDir, c.OutputDir)
		}
	}

	var formats []string
	for _, f := range c.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !texture.ValidFormat(f) {
			return fmt.Errorf("config: unknown texture format %q", f)
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{texture.FormatBMP}
	}
	c.Formats = formats

	if c.TextureScale <= 0 {
		c.TextureScale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}

// DecodeLayout returns the layout chosen by Resolve.
func (c Config) DecodeLayout() bg3d.Layout { return c.layout }
