package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"bg3d-tool/internal/bg3d"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	Convey("Config", t, func() {
		Convey("defaults", func() {
			var c Config
			So(c.Resolve(Flags{}), ShouldBeNil)
			So(c.Layout, ShouldEqual, "plain")
			So(c.DecodeLayout(), ShouldEqual, bg3d.LayoutPlain)
			So(c.Formats, ShouldResemble, []string{"bmp"})
			So(c.TextureScale, ShouldEqual, 1)
			So(c.Workers, ShouldEqual, runtime.NumCPU())
			So(c.OutputDir, ShouldEqual, "")
		})

		Convey("file then flags", func() {
			path := filepath.Join(t.TempDir(), "config.json")
			So(os.WriteFile(path, []byte(`{
				"layout": "padded",
				"data_dir": "/data",
				"formats": ["BMP", "webp"],
				"texture_scale": 4,
				"workers": 2
			}`), 0644), ShouldBeNil)

			c, err := Load(path)
			So(err, ShouldBeNil)
			So(c.Resolve(Flags{Workers: 8, OutputDir: "renders"}), ShouldBeNil)
			So(c.DecodeLayout(), ShouldEqual, bg3d.LayoutPadded)
			So(c.Formats, ShouldResemble, []string{"bmp", "webp"})
			So(c.TextureScale, ShouldEqual, 4)
			So(c.Workers, ShouldEqual, 8)
			So(c.OutputDir, ShouldEqual, filepath.Join("/data", "renders"))
		})

		Convey("output dir defaults under the data dir", func() {
			c := Config{DataDir: "/data"}
			So(c.Resolve(Flags{}), ShouldBeNil)
			So(c.OutputDir, ShouldEqual, filepath.Join("/data", "export"))
		})

		Convey("relative output dirs live under the data dir", func() {
			c := Config{DataDir: "/data", OutputDir: ".cache"}
			So(c.Resolve(Flags{}), ShouldBeNil)
			So(c.OutputDir, ShouldEqual, filepath.Join("/data", ".cache"))

			c = Config{DataDir: "/data", OutputDir: "/srv/out"}
			So(c.Resolve(Flags{}), ShouldBeNil)
			So(c.OutputDir, ShouldEqual, "/srv/out")
		})

		Convey("format flag", func() {
			var c Config
			So(c.Resolve(Flags{Formats: "tga, webp"}), ShouldBeNil)
			So(c.Formats, ShouldResemble, []string{"tga", "webp"})
		})

		Convey("bad values", func() {
			c := Config{Layout: "sideways"}
			So(c.Resolve(Flags{}), ShouldNotBeNil)

			c = Config{Formats: []string{"gif"}}
			So(c.Resolve(Flags{}), ShouldNotBeNil)
		})

		Convey("missing or broken file", func() {
			_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
			So(err, ShouldNotBeNil)

			path := filepath.Join(t.TempDir(), "bad.json")
			So(os.WriteFile(path, []byte("{"), 0644), ShouldBeNil)
			_, err = Load(path)
			So(err, ShouldNotBeNil)
		})
	})
}
