package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/mbr"
	"github.com/osuushi/mbr/advanced"
	"github.com/osuushi/mbr/internal/pointio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Prints the minimum bounding rectangle of a point set. Input is newline
// separated points in the form "x y", or an SVG drawing whose polygons,
// polylines and circles supply the points. Every flag can also be set from an
// MBR_* environment variable, or from a .env file in the working directory.

type config struct {
	Input    string
	Format   string
	Centered bool
	PNG      string
	Scale    float64
	Imgcat   bool
	Color    bool
	LogLevel string
	LogFile  string
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("mbr", "Find the minimum-area bounding rectangle of a set of points.")
	app.Arg("input", `Points file ("x y" per line, or .svg). Reads stdin when absent or "-".`).
		Default("-").StringVar(&cfg.Input)
	app.Flag("format", "Report format.").Short('f').
		Default("text").Envar("MBR_FORMAT").EnumVar(&cfg.Format, "text", "yaml")
	app.Flag("centered", "Center the rectangle on its true center rather than the hull centroid.").
		Envar("MBR_CENTERED").BoolVar(&cfg.Centered)
	app.Flag("png", "Write a picture of the points, hull and rectangle to this file.").
		Envar("MBR_PNG").StringVar(&cfg.PNG)
	app.Flag("scale", "Pixels per unit in pictures.").
		Default("50").Envar("MBR_SCALE").Float64Var(&cfg.Scale)
	app.Flag("imgcat", "Print the picture inline in the terminal (iTerm only).").
		Envar("MBR_IMGCAT").BoolVar(&cfg.Imgcat)
	app.Flag("color", "Colorize the text report.").
		Default("true").Envar("MBR_COLOR").BoolVar(&cfg.Color)
	app.Flag("log-level", "Log level.").
		Default("warn").Envar("MBR_LOG_LEVEL").EnumVar(&cfg.LogLevel, "debug", "info", "warn", "error")
	app.Flag("log-file", "Also write logs to this file, rotated at 10MB.").
		Envar("MBR_LOG_FILE").StringVar(&cfg.LogFile)
	return app
}

func main() {
	// The .env file is optional
	_ = godotenv.Load()

	var cfg config
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, closer := newLogger(cfg.LogLevel, cfg.LogFile)
	mbr.SetLogger(&logger)

	err := run(cfg, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error().Err(err).Msg("failed")
		fmt.Fprintln(os.Stderr, aurora.NewAurora(cfg.Color).Red(err.Error()))
	}
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	points, err := readPoints(cfg.Input, stdin)
	if err != nil {
		return err
	}

	hull, err := mbr.ConvexHull(points)
	if err != nil {
		return err
	}

	compute := mbr.ComputeMBR
	if cfg.Centered {
		compute = mbr.ComputeMBRCentered
	}
	rect, err := compute(points)
	if err != nil {
		return err
	}

	report := pointio.Report{Hull: hull, Rectangle: rect}
	switch cfg.Format {
	case "yaml":
		err = pointio.WriteYAML(stdout, report)
	default:
		err = pointio.WriteText(stdout, report, aurora.NewAurora(cfg.Color))
	}
	if err != nil {
		return err
	}

	if cfg.PNG != "" {
		if err := advanced.Render(points, hull, rect, cfg.Scale, false).SavePNG(cfg.PNG); err != nil {
			return errors.Wrapf(err, "writing %q", cfg.PNG)
		}
	}
	if cfg.Imgcat {
		return advanced.Preview(stdout, points, hull, rect, cfg.Scale)
	}
	return nil
}

func readPoints(input string, stdin io.Reader) ([]advanced.Point, error) {
	if input == "" || input == "-" {
		return pointio.ReadText(stdin)
	}
	return pointio.ReadFile(input)
}
