package main

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/convexhull"
	"github.com/pkg/errors"
)

// Read points in the text format: one "x y" or "x y tag" per line. Blank lines
// and anything after a # are ignored.
func readTextPoints(in io.Reader) ([]convexhull.Point, error) {
	var points []convexhull.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 3 || len(fields) < 2 {
			return nil, errors.Errorf("line %d: expected \"x y\" or \"x y tag\", got %q", lineNumber, strings.TrimSpace(line))
		}

		var values [3]int
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			values[i] = v
		}
		points = append(points, convexhull.Point{X: values[0], Y: values[1], Tag: values[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Read points from an SVG document. Every circle contributes its center, and
// every polygon and polyline contributes its vertices. Coordinates are rounded
// to the nearest integer. The tag of each point comes from a data-tag attribute
// on its element if there is one, and otherwise is the index of the element
// among the elements that had points.
func readSVGPoints(in io.Reader) ([]convexhull.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []convexhull.Point
	elementIndex := 0
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		var coordinates []string
		switch el.Name {
		case "circle":
			coordinates = []string{el.Attributes["cx"], el.Attributes["cy"]}
		case "polygon", "polyline":
			coordinates = strings.Fields(strings.ReplaceAll(el.Attributes["points"], ",", " "))
		}

		if len(coordinates) > 0 {
			if len(coordinates)%2 != 0 {
				return errors.Errorf("%s element %d has an odd number of coordinates", el.Name, elementIndex)
			}
			tag := elementIndex
			if tagString, ok := el.Attributes["data-tag"]; ok {
				if tag, err = strconv.Atoi(tagString); err != nil {
					return errors.Wrapf(err, "%s element %d: data-tag", el.Name, elementIndex)
				}
			}
			for i := 0; i < len(coordinates); i += 2 {
				x, err := parseSVGCoordinate(coordinates[i])
				if err != nil {
					return errors.Wrapf(err, "%s element %d", el.Name, elementIndex)
				}
				y, err := parseSVGCoordinate(coordinates[i+1])
				if err != nil {
					return errors.Wrapf(err, "%s element %d", el.Name, elementIndex)
				}
				points = append(points, convexhull.Point{X: x, Y: y, Tag: tag})
			}
			elementIndex++
		}

		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

func parseSVGCoordinate(s string) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.Abs(v) > math.MaxInt32 {
		return 0, errors.Errorf("coordinate %q out of range", s)
	}
	return int(math.Round(v)), nil
}
