package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/pathbool/pathbool"
	"github.com/tdewolff/pathbool/svgpath"
)

// Options is the command's argument set: two SVG path-data operands
// combined by a named boolean operation under a fill rule apiece.
type Options struct {
	Op      string `index:"0" desc:"boolean operation: union, difference, intersection, exclusion, division, fracture"`
	PathA   string `index:"1" desc:"first path's SVG path data"`
	PathB   string `index:"2" desc:"second path's SVG path data"`
	FillA   string `short:"a" default:"nonzero" desc:"fill rule for the first path: nonzero or evenodd"`
	FillB   string `short:"b" default:"nonzero" desc:"fill rule for the second path: nonzero or evenodd"`
	Output  string `short:"o" desc:"output file (default stdout)"`
	Verbose bool   `short:"v" desc:"enable debug logging"`
}

func main() {
	root := argp.NewCmd(&Options{}, "Planar boolean operations on SVG path data")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Options) Run() error {
	if cmd.Op == "" || cmd.PathA == "" || cmd.PathB == "" {
		return argp.ShowUsage
	}

	level := zerolog.InfoLevel
	if cmd.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	op, err := parseOp(cmd.Op)
	if err != nil {
		return err
	}
	fillA, err := parseFill(cmd.FillA)
	if err != nil {
		return err
	}
	fillB, err := parseFill(cmd.FillB)
	if err != nil {
		return err
	}

	segsA, err := svgpath.ParsePathData(cmd.PathA)
	if err != nil {
		return fmt.Errorf("path A: %w", err)
	}
	segsB, err := svgpath.ParsePathData(cmd.PathB)
	if err != nil {
		return fmt.Errorf("path B: %w", err)
	}

	cfg := pathbool.DefaultConfig()
	cfg.Log = log

	results, err := pathbool.PathBoolean(cfg, pathbool.Path(segsA), fillA, pathbool.Path(segsB), fillB, op)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	for _, r := range results {
		fmt.Fprintln(out, svgpath.FormatPathData(r, cfg.Linear))
	}
	log.Debug().Int("paths", len(results)).Msg("pathbool: done")
	return nil
}

func parseOp(s string) (pathbool.Op, error) {
	switch strings.ToLower(s) {
	case "union":
		return pathbool.Union, nil
	case "difference":
		return pathbool.Difference, nil
	case "intersection":
		return pathbool.Intersection, nil
	case "exclusion":
		return pathbool.Exclusion, nil
	case "division":
		return pathbool.Division, nil
	case "fracture":
		return pathbool.Fracture, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}

func parseFill(s string) (pathbool.FillRule, error) {
	switch strings.ToLower(s) {
	case "", "nonzero":
		return pathbool.NonZero, nil
	case "evenodd":
		return pathbool.EvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}
