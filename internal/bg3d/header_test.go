package bg3d

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeader(t *testing.T) {
	t.Parallel()

	Convey("ReadHeader", t, func() {
		Convey("good", func() {
			s := (&stream{}).header("BG3D 1.0 Model", 7)
			r := NewReader(s.reader())
			h, err := ReadHeader(r)
			So(err, ShouldBeNil)
			So(h.Version, ShouldEqual, 7)
			So(h.Text(), ShouldEqual, "BG3D 1.0 Model")
			So(r.Pos(), ShouldEqual, HeaderSize)
		})

		Convey("only the first four bytes are checked", func() {
			raw := append([]byte("BG3D"), bytes.Repeat([]byte{0xff}, 12)...)
			raw = append(raw, 0, 0, 0, 1)
			h, err := ReadHeader(NewReader(bytes.NewReader(raw)))
			So(err, ShouldBeNil)
			So(h.Version, ShouldEqual, 1)
		})

		Convey("Mac Roman header text", func() {
			s := (&stream{}).header("BG3D\xa9", 1)
			h, err := ReadHeader(NewReader(s.reader()))
			So(err, ShouldBeNil)
			So(h.Text(), ShouldEqual, "BG3D©")
		})

		Convey("bad magic", func() {
			for _, magic := range []string{"BG3C", "bg3d", "3DBG", "\x00\x00\x00\x00"} {
				s := (&stream{}).header(magic, 1)
				_, err := ReadHeader(NewReader(s.reader()))
				So(errors.Is(err, ErrBadMagic), ShouldBeTrue)
			}
		})

		Convey("short header string", func() {
			_, err := ReadHeader(NewReader(bytes.NewReader([]byte("BG3D"))))
			So(errors.Is(err, ErrTruncated), ShouldBeTrue)
			var de *DecodeError
			So(errors.As(err, &de), ShouldBeTrue)
			So(de.Op, ShouldEqual, "read header string")
		})

		Convey("short version", func() {
			raw := append([]byte("BG3D"), make([]byte, 14)...)
			_, err := ReadHeader(NewReader(bytes.NewReader(raw)))
			So(errors.Is(err, ErrTruncated), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "bg3d: read header version at 0x10: truncated input")
		})
	})
}
