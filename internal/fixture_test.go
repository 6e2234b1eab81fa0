package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs points. This is not a full (or
// even correct) svg parser. It collects the centers of circles and the vertices
// of polygons and polylines, in document order. A data-tag attribute sets the
// tag of the points from that element. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []Point
	for _, el := range rootEl.Children {
		tag := 0
		if tagString, ok := el.Attributes["data-tag"]; ok {
			tag = int(parseCoordinate(tagString))
		}

		switch el.Name {
		case "circle":
			points = append(points, Point{
				X:   int(parseCoordinate(el.Attributes["cx"])),
				Y:   int(parseCoordinate(el.Attributes["cy"])),
				Tag: tag,
			})
		case "polygon", "polyline":
			for _, pointString := range strings.Fields(el.Attributes["points"]) {
				pointStrings := strings.Split(pointString, ",")
				if len(pointStrings) != 2 {
					log.Fatalf("Invalid point string %q", pointString)
				}
				points = append(points, Point{
					X:   int(parseCoordinate(pointStrings[0])),
					Y:   int(parseCoordinate(pointStrings[1])),
					Tag: tag,
				})
			}
		}
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func parseCoordinate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return math.Round(v)
}
