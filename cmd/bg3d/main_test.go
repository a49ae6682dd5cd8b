package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
		err  bool
	}{
		{name: "path only", args: []string{"a.bg3d"}, want: options{input: "a.bg3d"}},
		{name: "flags after path", args: []string{"a.bg3d", "-r", "-o", "out"}, want: options{input: "a.bg3d", raw: true, output: "out"}},
		{name: "flags before path", args: []string{"-o", "out", "a.bg3d", "-r"}, want: options{input: "a.bg3d", raw: true, output: "out"}},
		{name: "extra options", args: []string{"-layout", "padded", "a.bg3d", "-formats", "bmp,tga", "-scale", "2"}, want: options{input: "a.bg3d", layout: "padded", formats: "bmp,tga", scale: 2}},
		{name: "no args", args: nil, err: true},
		{name: "no path", args: []string{"-r"}, err: true},
		{name: "unknown flag", args: []string{"a.bg3d", "-x"}, err: true},
		{name: "missing value", args: []string{"a.bg3d", "-o"}, err: true},
		{name: "two paths", args: []string{"a.bg3d", "b.bg3d"}, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got, err := parseArgs(tt.args, &stderr)
			if tt.err {
				if err == nil {
					t.Fatalf("parseArgs(%q) = %+v, want error", tt.args, got)
				}
				if !bytes.Contains(stderr.Bytes(), []byte(usageLine)) {
					t.Errorf("stderr %q lacks usage line", stderr.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%q): %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func sample(t *testing.T, truncate bool) string {
	var b bytes.Buffer
	var str [16]byte
	copy(str[:], "BG3D")
	b.Write(str[:])
	for _, v := range []uint32{1, 2, 1, 1, 3} { // version, texture 1x1, 3 bytes
		binary.Write(&b, binary.BigEndian, v)
	}
	b.Write([]byte{10, 20, 30})
	if !truncate {
		binary.Write(&b, binary.BigEndian, uint32(11))
	}
	path := filepath.Join(t.TempDir(), "model.bg3d")
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	Convey("run", t, func() {
		var stdout, stderr bytes.Buffer

		Convey("usage exits 2", func() {
			So(run(nil, &stdout, &stderr), ShouldEqual, 2)
			So(stderr.String(), ShouldContainSubstring, usageLine)
		})

		Convey("bad layout exits 2", func() {
			So(run([]string{sample(t, false), "-layout", "odd"}, &stdout, &stderr), ShouldEqual, 2)
		})

		Convey("summary without flags", func() {
			So(run([]string{sample(t, false)}, &stdout, &stderr), ShouldEqual, 0)
			So(stdout.String(), ShouldContainSubstring, "version 1, 0 meshes, 1 textures")
		})

		Convey("raw dump", func() {
			So(run([]string{sample(t, false), "-r"}, &stdout, &stderr), ShouldEqual, 0)
			So(stdout.String(), ShouldStartWith, "Header: BG3D\n")
			So(stdout.String(), ShouldContainSubstring, "      27: 11 (tag)")
		})

		Convey("export", func() {
			out := filepath.Join(t.TempDir(), "tex")
			So(run([]string{"-o", out, sample(t, false)}, &stdout, &stderr), ShouldEqual, 0)
			_, err := os.Stat(out + ".bmp")
			So(err, ShouldBeNil)
			raw, err := os.ReadFile(out + ".gltf")
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"uri": "tex.bmp"`)
		})

		Convey("decode error exits 1", func() {
			So(run([]string{sample(t, true)}, &stdout, &stderr), ShouldEqual, 1)
			So(stderr.String(), ShouldContainSubstring, "read tag at 0x27: truncated input")
		})

		Convey("missing file exits 1", func() {
			So(run([]string{filepath.Join(t.TempDir(), "nope.bg3d")}, &stdout, &stderr), ShouldEqual, 1)
		})
	})
}
