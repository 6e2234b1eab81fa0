package internal

import (
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Split points into regions by tag.
func GroupByTag(points []Point) map[int][]Point {
	regions := make(map[int][]Point)
	for _, p := range points {
		regions[p.Tag] = append(regions[p.Tag], p)
	}
	return regions
}

// Compute a separate hull for every tag. The regions are independent, so they
// run concurrently. If any region fails, the first failure is returned, wrapped
// with its tag.
func ConvexHullsByTag(points []Point) (map[int][]Point, error) {
	regions := GroupByTag(points)
	tags := make([]int, 0, len(regions))
	for tag := range regions {
		tags = append(tags, tag)
	}
	sort.Ints(tags)

	hulls := make([][]Point, len(tags))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, tag := range tags {
		i, tag := i, tag
		group.Go(func() (err error) {
			defer func() {
				if recovered := HandlePanicRecover(recover()); recovered != nil {
					err = errors.Wrapf(recovered, "region %d", tag)
				}
			}()
			hull, err := ConvexHull(regions[tag])
			if err != nil {
				return errors.Wrapf(err, "region %d", tag)
			}
			hulls[i] = hull
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := make(map[int][]Point, len(tags))
	for i, tag := range tags {
		result[tag] = hulls[i]
	}
	Logger().Debug("convexhull: region hulls computed", "regions", len(tags))
	return result, nil
}
