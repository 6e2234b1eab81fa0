package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/kr/pretty"
	"github.com/osuushi/convexhull"
)

// Write points in the same text format readTextPoints reads. The tag column is
// left off for untagged points.
func writePoints(out io.Writer, points []convexhull.Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		if p.Tag == 0 {
			fmt.Fprintf(w, "%d %d\n", p.X, p.Y)
		} else {
			fmt.Fprintf(w, "%d %d %d\n", p.X, p.Y, p.Tag)
		}
	}
	return w.Flush()
}

// Write hulls keyed by tag, in tag order. Each hull is introduced by a
// "# tag N" comment line, so the output is still valid text input.
func writeRegionHulls(out io.Writer, hulls map[int][]convexhull.Point) error {
	for i, tag := range sortedTags(hulls) {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "# tag %d\n", tag); err != nil {
			return err
		}
		if err := writePoints(out, hulls[tag]); err != nil {
			return err
		}
	}
	return nil
}

func writePretty(out io.Writer, v interface{}) error {
	_, err := pretty.Fprintf(out, "%# v\n", v)
	return err
}

func sortedTags(hulls map[int][]convexhull.Point) []int {
	tags := make([]int, 0, len(hulls))
	for tag := range hulls {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return tags
}
