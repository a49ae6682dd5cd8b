package texture

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"bg3d-tool/internal/bg3d"
)

// 2 wide, 3 high; texel i lands at (i/3, i%3).
var sample = bg3d.TextureMap{
	Width: 2, Height: 3, BufferSize: 18,
	Pixels: []byte{
		10, 0, 0, 20, 0, 0, 30, 0, 0,
		0, 10, 0, 0, 20, 0, 0, 30, 0,
	},
}

func TestImage(t *testing.T) {
	t.Parallel()

	Convey("Image", t, func() {
		img, err := Image(sample)
		So(err, ShouldBeNil)
		So(img.Bounds().Dx(), ShouldEqual, 2)
		So(img.Bounds().Dy(), ShouldEqual, 3)
		So(img.Opaque(), ShouldBeTrue)
		So(img.NRGBAAt(0, 0), ShouldResemble, color.NRGBA{10, 0, 0, 255})
		So(img.NRGBAAt(0, 2), ShouldResemble, color.NRGBA{30, 0, 0, 255})
		So(img.NRGBAAt(1, 1), ShouldResemble, color.NRGBA{0, 20, 0, 255})

		Convey("short buffer", func() {
			short := sample
			short.Pixels = short.Pixels[:10]
			_, err := Image(short)
			So(errors.Is(err, bg3d.ErrShortPixels), ShouldBeTrue)
		})

		Convey("empty texture", func() {
			img, err := Image(bg3d.TextureMap{})
			So(err, ShouldBeNil)
			So(img.Bounds().Empty(), ShouldBeTrue)

			img, err = Image(bg3d.TextureMap{Width: 1 << 31})
			So(err, ShouldBeNil)
			So(img.Bounds().Empty(), ShouldBeTrue)
		})

		Convey("oversized header", func() {
			_, err := Image(bg3d.TextureMap{Width: 2007567422, Height: 3062868337, Pixels: make([]byte, 26)})
			So(errors.Is(err, bg3d.ErrShortPixels), ShouldBeTrue)
		})

		Convey("scale", func() {
			big := Scale(img, 3)
			So(big.Bounds().Dx(), ShouldEqual, 6)
			So(big.Bounds().Dy(), ShouldEqual, 9)
			So(big.NRGBAAt(5, 8), ShouldResemble, img.NRGBAAt(1, 2))
			So(big.NRGBAAt(3, 3), ShouldResemble, img.NRGBAAt(1, 1))
			So(Scale(img, 1), ShouldEqual, img)
		})
	})
}

func TestExporter(t *testing.T) {
	t.Parallel()

	Convey("Exporter", t, func() {
		dir := t.TempDir()
		e := &Exporter{Base: filepath.Join(dir, "out", "model"), Formats: []string{"bmp", "TGA", "webp"}}

		So(e.Header(bg3d.FileHeader{}), ShouldBeNil)
		So(e.Record(bg3d.GroupStart{}), ShouldBeNil)
		So(e.Record(sample), ShouldBeNil)
		So(e.Record(sample), ShouldBeNil)
		So(e.Count(), ShouldEqual, 2)
		So(e.Files(), ShouldResemble, []string{
			filepath.Join(dir, "out", "model.bmp"),
			filepath.Join(dir, "out", "model.tga"),
			filepath.Join(dir, "out", "model.webp"),
			filepath.Join(dir, "out", "model_1.bmp"),
			filepath.Join(dir, "out", "model_1.tga"),
			filepath.Join(dir, "out", "model_1.webp"),
		})

		want, err := Image(sample)
		So(err, ShouldBeNil)
		for _, path := range e.Files() {
			got, err := Load(path)
			So(err, ShouldBeNil)
			So(got.Bounds(), ShouldResemble, want.Bounds())
			for x := 0; x < 2; x++ {
				for y := 0; y < 3; y++ {
					So(got.NRGBAAt(x, y), ShouldResemble, want.NRGBAAt(x, y))
				}
			}
		}

		Convey("bmp is 24-bit", func() {
			raw, err := os.ReadFile(e.Files()[0])
			So(err, ShouldBeNil)
			So(string(raw[:2]), ShouldEqual, "BM")
			So(raw[28], ShouldEqual, 24)
		})

		Convey("default format is bmp", func() {
			d := &Exporter{Base: filepath.Join(dir, "plain")}
			So(d.Record(sample), ShouldBeNil)
			So(d.Files(), ShouldResemble, []string{filepath.Join(dir, "plain.bmp")})
		})

		Convey("bad texture fails the export", func() {
			short := sample
			short.Pixels = nil
			So(e.Record(short), ShouldNotBeNil)
		})

		Convey("unknown format", func() {
			d := &Exporter{Base: filepath.Join(dir, "x"), Formats: []string{"gif"}}
			So(d.Record(sample), ShouldNotBeNil)
			So(ValidFormat("gif"), ShouldBeFalse)
			So(ValidFormat("WEBP"), ShouldBeTrue)
		})
	})
}

func TestFileName(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "a/b.bmp"},
		{1, "a/b_1.bmp"},
		{12, "a/b_12.bmp"},
	}
	for _, c := range cases {
		if got := FileName("a/b", c.n, "bmp"); got != c.want {
			t.Errorf("FileName(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if _, err := Load("x.png"); err == nil {
		t.Error("Load accepted .png")
	}
}
