package texture

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"bg3d-tool/internal/bg3d"
)

// Supported export formats.
const (
	FormatBMP  = "bmp"
	FormatTGA  = "tga"
	FormatWebP = "webp"
)

var encoders = map[string]func(io.Writer, image.Image) error{
	FormatBMP: bmp.Encode,
	FormatTGA: tga.Encode,
	FormatWebP: func(w io.Writer, img image.Image) error {
		return nativewebp.Encode(w, img, nil)
	},
}

// ValidFormat reports whether name is an export format.
func ValidFormat(name string) bool {
	_, ok := encoders[strings.ToLower(name)]
	return ok
}

// FileName returns the path for the n-th texture of an export: base.ext
// for the first, base_n.ext after that.
func FileName(base string, n int, ext string) string {
	if n == 0 {
		return base + "." + ext
	}
	return fmt.Sprintf("%s_%d.%s", base, n, ext)
}

// Exporter is a bg3d.Sink that writes every TextureMap record as an image
// file in each configured format.
type Exporter struct {
	Base    string   // output path without extension
	Formats []string // defaults to bmp
	Scale   int      // integer enlargement, 0 or 1 for none

	count int
	files []string
}

// Files returns the paths written so far, in order.
func (e *Exporter) Files() []string { return e.files }

// Count returns the number of textures exported.
func (e *Exporter) Count() int { return e.count }

func (e *Exporter) Header(bg3d.FileHeader) error { return nil }

func (e *Exporter) Record(rec bg3d.Record) error {
	t, ok := rec.(bg3d.TextureMap)
	if !ok {
		return nil
	}

	img, err := Image(t)
	if err != nil {
		return err
	}
	img = Scale(img, e.Scale)

	formats := e.Formats
	if len(formats) == 0 {
		formats = []string{FormatBMP}
	}
	for _, f := range formats {
		f = strings.ToLower(f)
		path := FileName(e.Base, e.count, f)
		if err := writeImage(path, img, f); err != nil {
			return err
		}
		e.files = append(e.files, path)
	}
	e.count++
	return nil
}

func writeImage(path string, img image.Image, format string) error {
	enc, ok := encoders[format]
	if !ok {
		return fmt.Errorf("texture: unknown format %q", format)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("texture: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("texture: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("texture: close %s: %w", path, err)
	}
	return nil
}
