package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/internal"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Compute convex hulls from the command line. Input is newline separated
// points in the form "x y" or "x y tag", or an SVG file whose circles,
// polygons and polylines supply the points.

var (
	app        = kingpin.New("hull", "Compute convex hulls of integer point sets.")
	verbose    = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	noColor    = app.Flag("no-color", "Disable colored messages.").Bool()
	profileDir = app.Flag("profile", "Write a CPU profile to this directory.").PlaceHolder("DIR").String()

	computeCmd     = app.Command("compute", "Compute the convex hull of a point set.")
	computeFile    = computeCmd.Arg("file", "Input file. Reads stdin if omitted.").String()
	computeFormat  = computeCmd.Flag("format", "Input format.").Short('f').Default("text").Enum("text", "svg")
	computeOutput  = computeCmd.Flag("output", "Output format.").Short('o').Default("text").Enum("text", "pretty")
	computeRegions = computeCmd.Flag("regions", "Compute a separate hull for each tag.").Short('r').Bool()
	computeDraw    = computeCmd.Flag("draw", "Write a PNG preview of the points and hulls.").PlaceHolder("FILE.png").String()
	computeScale   = computeCmd.Flag("scale", "Preview pixels per unit.").Default("1").Float64()
	computeLabels  = computeCmd.Flag("labels", "Label hull vertices in the preview.").Bool()
	computeImgcat  = computeCmd.Flag("imgcat", "Print the preview in the terminal (iTerm only).").Bool()

	genCmd       = app.Command("gen", "Generate a noise point cloud in the text format.")
	genWidth     = genCmd.Flag("width", "Width of the sampled area.").Default("100").Int()
	genHeight    = genCmd.Flag("height", "Height of the sampled area.").Default("100").Int()
	genStep      = genCmd.Flag("step", "Grid spacing between samples.").Default("2").Int()
	genSeed      = genCmd.Flag("seed", "Noise seed.").Default("1").Int64()
	genFrequency = genCmd.Flag("frequency", "Noise frequency.").Default("0.03").Float64()
	genThreshold = genCmd.Flag("threshold", "Keep samples with noise above this value.").Default("0.2").Float64()
	genRegions   = genCmd.Flag("regions", "Number of tags, by noise band.").Default("1").Int()
)

type computeOptions struct {
	Format  string
	Output  string
	Regions bool
	Draw    string
	Scale   float64
	Labels  bool
	Imgcat  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	command := kingpin.MustParse(app.Parse(args))
	au := aurora.NewAurora(!*noColor)

	if *verbose {
		convexhull.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	var err error
	switch command {
	case computeCmd.FullCommand():
		err = runCompute(au)
	case genCmd.FullCommand():
		err = writePoints(os.Stdout, generate(genOptions{
			Width:     *genWidth,
			Height:    *genHeight,
			Step:      *genStep,
			Seed:      int32(*genSeed),
			Frequency: *genFrequency,
			Threshold: *genThreshold,
			Regions:   *genRegions,
		}))
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, au.Red("error:"), err)
		return 1
	}
	return 0
}

func runCompute(au aurora.Aurora) error {
	in := io.Reader(os.Stdin)
	if *computeFile != "" {
		f, err := os.Open(*computeFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return compute(in, os.Stdout, os.Stderr, au, computeOptions{
		Format:  *computeFormat,
		Output:  *computeOutput,
		Regions: *computeRegions,
		Draw:    *computeDraw,
		Scale:   *computeScale,
		Labels:  *computeLabels,
		Imgcat:  *computeImgcat,
	})
}

// Read points, compute the hull (or hulls), and write them out. Status
// messages go to stderr so stdout stays parseable.
func compute(in io.Reader, stdout, stderr io.Writer, au aurora.Aurora, opts computeOptions) error {
	var (
		points []convexhull.Point
		err    error
	)
	switch opts.Format {
	case "svg":
		points, err = readSVGPoints(in)
	default:
		points, err = readTextPoints(in)
	}
	if err != nil {
		return err
	}

	var hulls map[int][]convexhull.Point
	if opts.Regions {
		hulls, err = convexhull.ConvexHullsByTag(points)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "%s %d regions from %d points\n", au.Green("hulls:"), len(hulls), len(points))
	} else {
		hull, err := convexhull.ConvexHull(points)
		if err != nil {
			return err
		}
		if convexhull.Polygon(hull).Closed() {
			fmt.Fprintf(stderr, "%s %d vertices from %d points\n",
				au.Green("hull:"), len(hull)-1, len(points))
		} else {
			fmt.Fprintf(stderr, "%s all points collinear, writing %d sorted points\n",
				au.Yellow("warning:"), len(hull))
		}
		// Untagged single hulls are keyed by tag 0 for drawing
		hulls = map[int][]convexhull.Point{0: hull}
	}

	switch {
	case opts.Output == "pretty" && opts.Regions:
		err = writePretty(stdout, hulls)
	case opts.Output == "pretty":
		err = writePretty(stdout, hulls[0])
	case opts.Regions:
		err = writeRegionHulls(stdout, hulls)
	default:
		err = writePoints(stdout, hulls[0])
	}
	if err != nil {
		return errors.Wrap(err, "writing hull")
	}

	if opts.Draw != "" {
		if err := internal.DrawPNG(opts.Draw, points, hulls, internal.DrawOptions{Scale: opts.Scale, Labels: opts.Labels}); err != nil {
			return err
		}
		if opts.Imgcat {
			imgcat.CatFile(opts.Draw, stdout)
		}
	}
	return nil
}
