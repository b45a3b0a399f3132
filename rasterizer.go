package clip

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// ToRasterizer renders the path into ras at dpu dots per unit. Coordinates
// follow the SVG convention with the origin in the top-left corner and y
// growing downwards, matching the rasterizer's frame. An open trailing subpath
// is closed implicitly.
func (p *Path) ToRasterizer(ras *vector.Rasterizer, dpu float64) {
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			ras.MoveTo(float32(p.d[i+1]*dpu), float32(p.d[i+2]*dpu))
		case LineToCmd:
			ras.LineTo(float32(p.d[i+1]*dpu), float32(p.d[i+2]*dpu))
		case QuadToCmd:
			ras.QuadTo(float32(p.d[i+1]*dpu), float32(p.d[i+2]*dpu), float32(p.d[i+3]*dpu), float32(p.d[i+4]*dpu))
		case CubeToCmd:
			ras.CubeTo(float32(p.d[i+1]*dpu), float32(p.d[i+2]*dpu), float32(p.d[i+3]*dpu), float32(p.d[i+4]*dpu), float32(p.d[i+5]*dpu), float32(p.d[i+6]*dpu))
		case CloseCmd:
			ras.ClosePath()
		}
		i += cmdLen(cmd)
	}
	if !p.Empty() && p.d[len(p.d)-1] != CloseCmd {
		ras.ClosePath()
	}
}

// WritePNG writes paths as a PNG image of width by height units rendered at
// dpu dots per unit on a white background, cycling through the same fill
// colors as WriteSVG.
// TODO: use fill rule (EvenOdd, NonZero) for rasterizer
func WritePNG(w io.Writer, paths []*Path, width, height, dpu float64) error {
	rect := image.Rect(0, 0, int(math.Ceil(width*dpu)), int(math.Ceil(height*dpu)))
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	fills := []color.NRGBA{
		{0x2c, 0x7f, 0xb8, 153},
		{0xd9, 0x5f, 0x0e, 153},
		{0x31, 0xa3, 0x54, 153},
		{0x75, 0x6b, 0xb1, 153},
	}
	for i, p := range paths {
		if p.Empty() {
			continue
		}
		ras := vector.NewRasterizer(rect.Max.X, rect.Max.Y)
		p.ToRasterizer(ras, dpu)
		ras.Draw(img, rect, image.NewUniform(fills[i%len(fills)]), image.Point{})
	}
	return png.Encode(w, img)
}
