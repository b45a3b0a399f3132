package clip

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/tdewolff/test"
)

func isWhite(r, g, b uint32) bool {
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, []*Path{Rectangle(1.0, 1.0, 8.0, 8.0)}, 10.0, 10.0, 10.0)
	test.Error(t, err)

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 100)
	test.T(t, img.Bounds().Dy(), 100)

	r, g, b, _ := img.At(50, 50).RGBA()
	test.That(t, !isWhite(r, g, b))

	r, g, b, _ = img.At(5, 5).RGBA()
	test.That(t, isWhite(r, g, b))
}

func TestWritePNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, []*Path{{}}, 2.0, 2.0, 1.0)
	test.Error(t, err)

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	test.Error(t, err)
	r, g, b, _ := img.At(1, 1).RGBA()
	test.That(t, isWhite(r, g, b))
}

func TestToRasterizerClosesOpenPath(t *testing.T) {
	// an open subpath renders as if closed
	var buf bytes.Buffer
	err := WritePNG(&buf, []*Path{MustParseSVG("M0 0L10 0L0 10")}, 10.0, 10.0, 1.0)
	test.Error(t, err)

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	test.Error(t, err)
	r, g, b, _ := img.At(2, 2).RGBA()
	test.That(t, !isWhite(r, g, b))
	r, g, b, _ = img.At(8, 8).RGBA()
	test.That(t, isWhite(r, g, b))
}
