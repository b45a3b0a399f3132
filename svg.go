package clip

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits used when formatting coordinates in SVG output.
var Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// WriteSVG writes paths as a standalone SVG image of the given size. Each path
// becomes a path element, cycling through a small set of fill colors so that
// overlapping shapes remain distinguishable. Paths with the EvenOdd fill rule
// carry the corresponding fill-rule attribute.
func WriteSVG(w io.Writer, paths []*Path, width, height float64) error {
	if _, err := fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, num(width), num(height), num(width), num(height)); err != nil {
		return err
	}
	fills := []string{"#2c7fb8", "#d95f0e", "#31a354", "#756bb1"}
	for i, p := range paths {
		if p.Empty() {
			continue
		}
		fmt.Fprintf(w, `<path d="%s" fill="%s" fill-opacity="0.6"`, p.ToSVG(), fills[i%len(fills)])
		if p.FillRule == EvenOdd {
			fmt.Fprintf(w, ` fill-rule="evenodd"`)
		}
		fmt.Fprintf(w, `/>`)
	}
	_, err := fmt.Fprintf(w, `</svg>`)
	return err
}
