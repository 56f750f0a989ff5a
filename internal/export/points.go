package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

// CurveData is the JSON form of a sampled curve.
type CurveData struct {
	Topic        conic.Topic     `json:"topic"`
	Params       conic.Params    `json:"params"`
	Eccentricity float64         `json:"eccentricity"`
	Color        conic.Color     `json:"color"`
	Closed       bool            `json:"closed"`
	Branches     [][]conic.Point `json:"branches"`
	Foci         []conic.Point   `json:"foci"`
	Annotation   string          `json:"annotation,omitempty"`
	Points       int             `json:"points"`
}

func NewCurveData(c conic.Curve, p conic.Params) CurveData {
	branches := c.Branches
	if branches == nil {
		branches = [][]conic.Point{}
	}
	foci := c.Foci
	if foci == nil {
		foci = []conic.Point{}
	}
	return CurveData{
		Topic:        c.Topic,
		Params:       p,
		Eccentricity: c.Eccentricity,
		Color:        c.Color,
		Closed:       c.Closed,
		Branches:     branches,
		Foci:         foci,
		Annotation:   c.Annotation,
		Points:       len(c.Points()),
	}
}

func WriteJSON(w io.Writer, c conic.Curve, p conic.Params) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewCurveData(c, p))
}

// WriteCSV writes one row per sampled point, then one per focus.
func WriteCSV(w io.Writer, c conic.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "branch", "index", "x", "y"}); err != nil {
		return err
	}
	for b, branch := range c.Branches {
		for i, p := range branch {
			if err := cw.Write(row("point", b, i, p)); err != nil {
				return err
			}
		}
	}
	for i, f := range c.Foci {
		if err := cw.Write(row("focus", -1, i, f)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(kind string, branch, index int, p conic.Point) []string {
	return []string{
		kind,
		strconv.Itoa(branch),
		strconv.Itoa(index),
		strconv.FormatFloat(p.X, 'f', 6, 64),
		strconv.FormatFloat(p.Y, 'f', 6, 64),
	}
}

// WriteFile creates path and hands it to write; "-" writes to stdout.
func WriteFile(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return f.Close()
}
