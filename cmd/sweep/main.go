package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweep"
)

type Subcurves struct {
	Overlapping bool   `short:"l" desc:"Report overlapping portions once per participating curve"`
	Input       string `index:"0" desc:"Input file, one curve per line as x1 y1 x2 y2 [x3 y3 ...]; reads stdin when omitted"`
}

type Points struct {
	SkipEndpoints bool   `short:"s" desc:"Report only intersections interior to a curve"`
	Input         string `index:"0" desc:"Input file, one curve per line as x1 y1 x2 y2 [x3 y3 ...]; reads stdin when omitted"`
}

type Intersects struct {
	Input string `index:"0" desc:"Input file, one curve per line as x1 y1 x2 y2 [x3 y3 ...]; reads stdin when omitted"`
}

func main() {
	root := argp.NewCmd(&Subcurves{}, "Plane-sweep arrangement tool by Taco de Wolff")
	root.AddCmd(&Points{}, "points", "Report all pairwise intersection points")
	root.AddCmd(&Intersects{}, "intersects", "Report whether any two curves intersect")
	root.Parse()
	root.PrintHelp()
}

func readCurves(input string) ([]sweep.Polyline, error) {
	var r io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var curves []sweep.Polyline
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields)%2 != 0 || len(fields) < 4 {
			return nil, fmt.Errorf("line %d: expected an even number of at least four coordinates", line)
		}
		poly := make(sweep.Polyline, 0, len(fields)/2)
		for i := 0; i < len(fields); i += 2 {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", line, err)
			}
			y, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", line, err)
			}
			poly = append(poly, sweep.Point{X: x, Y: y})
		}
		curves = append(curves, poly)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return curves, nil
}

func (cmd *Subcurves) Run() error {
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	s := sweep.NewSegmentSweeper()
	s.Subcurves(curves, func(c sweep.Segment) {
		fmt.Printf("%g %g %g %g\n", c.A.X, c.A.Y, c.B.X, c.B.Y)
	}, cmd.Overlapping)
	return nil
}

func (cmd *Points) Run() error {
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	s := sweep.NewSegmentSweeper()
	s.IntersectionPoints(curves, func(p sweep.Point) {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}, !cmd.SkipEndpoints)
	return nil
}

func (cmd *Intersects) Run() error {
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	s := sweep.NewSegmentSweeper()
	if s.Intersects(curves) {
		fmt.Println("yes")
		return nil
	}
	fmt.Println("no")
	return nil
}
