package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/clip"
)

type Main struct {
	Tolerance float64 `short:"t" default:"0.5" desc:"Maximum deviation when flattening Bezier curves"`
	Format    string  `short:"f" default:"svg" desc:"Output format: svg, path, wkt, png"`
	Output    string  `short:"o" desc:"Output file, default is standard output"`
	Scale     float64 `short:"s" default:"10" desc:"Pixels per unit for PNG output"`
	View      bool    `desc:"Open the result in a web browser"`
	Verbose   bool    `short:"v" desc:"Print debug logging to standard error"`
	Op        string  `index:"0" desc:"Operation: union, intersect, subtract, exclude, intersections"`
	Subject   string  `index:"1" desc:"Subject path data or file"`
	Clip      string  `index:"2" desc:"Clip path data or file"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Boolean operations on closed SVG paths by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	if cmd.Op == "" || cmd.Subject == "" || cmd.Clip == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		clip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	subject, err := readPath(cmd.Subject)
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	clipPath, err := readPath(cmd.Clip)
	if err != nil {
		return fmt.Errorf("clip: %w", err)
	}

	opts := clip.DefaultOptions()
	opts.FlattenTolerance = cmd.Tolerance

	if cmd.Op == "intersections" {
		zs := clip.PathIntersections(subject, clipPath, opts.IntersectionTolerance)
		fmt.Println(len(zs), "intersections")
		for _, z := range zs {
			fmt.Println(z)
		}
		return nil
	}

	var op clip.Op
	switch cmd.Op {
	case "union":
		op = clip.OpUnion
	case "intersect":
		op = clip.OpIntersect
	case "subtract":
		op = clip.OpSubtract
	case "exclude":
		op = clip.OpExclude
	default:
		fmt.Println("ERROR: unknown operation:", cmd.Op)
		return argp.ShowUsage
	}

	result, err := clip.Boolean(op, []*clip.Path{subject}, []*clip.Path{clipPath}, opts)
	if err != nil {
		return err
	}

	format := cmd.Format
	if cmd.View && format != "png" {
		format = "svg"
	}

	var out *os.File
	if cmd.Output != "" {
		out, err = os.Create(cmd.Output)
	} else if cmd.View {
		out, err = os.CreateTemp("", "clip-*."+format)
	} else {
		out = os.Stdout
	}
	if err != nil {
		return err
	}

	bounds := subject.Bounds().Add(clipPath.Bounds()).Add(result.Bounds())
	width, height := bounds.X+bounds.W, bounds.Y+bounds.H
	switch format {
	case "svg":
		err = clip.WriteSVG(out, []*clip.Path{result}, width, height)
	case "path":
		_, err = fmt.Fprintln(out, result.ToSVG())
	case "wkt":
		_, err = fmt.Fprintln(out, wkt.MarshalString(result.ToOrb(cmd.Tolerance)))
	case "png":
		err = clip.WritePNG(out, []*clip.Path{result}, width, height, cmd.Scale)
	default:
		fmt.Println("ERROR: unknown output format:", cmd.Format)
		return argp.ShowUsage
	}
	if err != nil {
		return err
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			return err
		}
	}
	if cmd.View {
		return browser.OpenFile(out.Name())
	}
	return nil
}

func readPath(arg string) (*clip.Path, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		arg = strings.TrimSpace(string(b))
	}
	return clip.ParseSVG(arg)
}
