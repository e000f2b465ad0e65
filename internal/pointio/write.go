package pointio

import (
	"fmt"
	"io"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/mbr/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The result of a bounding rectangle run, as reported by the command line
// tool.
type Report struct {
	Hull      []advanced.Point
	Rectangle advanced.Rectangle
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlReport struct {
	Hull            []yamlPoint `yaml:"hull"`
	Center          yamlPoint   `yaml:"center"`
	HalfSize        yamlPoint   `yaml:"halfSize"`
	Rotation        float64     `yaml:"rotation"`
	RotationDegrees float64     `yaml:"rotationDegrees"`
	Area            float64     `yaml:"area"`
}

func toYAMLPoint(p advanced.Point) yamlPoint {
	return yamlPoint{p.X, p.Y}
}

func WriteYAML(w io.Writer, report Report) error {
	out := yamlReport{
		Hull:            make([]yamlPoint, len(report.Hull)),
		Center:          toYAMLPoint(report.Rectangle.Center),
		HalfSize:        toYAMLPoint(report.Rectangle.HalfSize),
		Rotation:        report.Rectangle.Rotation,
		RotationDegrees: degrees(report.Rectangle.Rotation),
		Area:            report.Rectangle.Area(),
	}
	for i, p := range report.Hull {
		out.Hull[i] = toYAMLPoint(p)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encoding yaml report")
	}
	return errors.Wrap(enc.Close(), "encoding yaml report")
}

// Human readable report. Pass aurora.NewAurora(false) for plain text.
func WriteText(w io.Writer, report Report, au aurora.Aurora) error {
	rect := report.Rectangle
	lines := []string{
		fmt.Sprintf("%s %d vertices", au.Bold("hull:"), len(report.Hull)),
	}
	for _, p := range report.Hull {
		lines = append(lines, fmt.Sprintf("  %s", au.Cyan(formatPoint(p))))
	}
	lines = append(lines,
		fmt.Sprintf("%s %s", au.Bold("center:"), au.Green(formatPoint(rect.Center))),
		fmt.Sprintf("%s %s", au.Bold("half size:"), au.Green(formatPoint(rect.HalfSize))),
		fmt.Sprintf("%s %s", au.Bold("rotation:"), au.Green(fmt.Sprintf("%g rad (%g°)", rect.Rotation, degrees(rect.Rotation)))),
		fmt.Sprintf("%s %s", au.Bold("area:"), au.Green(fmt.Sprintf("%g", rect.Area()))),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}

func formatPoint(p advanced.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
