// Package pointio reads point sets and writes rectangle reports for the
// command line tool and the test fixtures.
package pointio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/mbr/advanced"
	"github.com/pkg/errors"
)

// Read points from a file, picking the SVG reader for .svg files and the text
// reader for anything else.
func ReadFile(path string) ([]advanced.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVG(f)
	}
	return ReadText(f)
}

// Read newline separated points in the form "x y" (or "x,y"). Blank lines and
// lines starting with # are skipped.
func ReadText(in io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitCoordinates(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected 2 coordinates, got %d", lineNumber, len(fields))
		}
		point, err := parsePoint(fields[0], fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Read the points of an SVG document. This is not a full SVG reader: it
// collects the vertices of every polygon and polyline and the centers of
// every circle, and ignores transforms.
func ReadSVG(in io.Reader) ([]advanced.Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []advanced.Point
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range rootEl.FindAll(name) {
			fields := splitCoordinates(el.Attributes["points"])
			if len(fields)%2 != 0 {
				return nil, errors.Errorf("%s has an odd number of coordinates", name)
			}
			for i := 0; i < len(fields); i += 2 {
				point, err := parsePoint(fields[i], fields[i+1])
				if err != nil {
					return nil, errors.Wrapf(err, "%s point %d", name, i/2)
				}
				points = append(points, point)
			}
		}
	}

	for i, el := range rootEl.FindAll("circle") {
		point, err := parsePoint(el.Attributes["cx"], el.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		return nil, errors.New("no points found in svg")
	}
	return points, nil
}

func splitCoordinates(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parsePoint(xs, ys string) (advanced.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return advanced.Point{X: x, Y: y}, nil
}
