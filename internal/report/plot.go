// Package report renders scenario analysis results as a stacked
// time-series PNG figure and, optionally, an interactive HTML page.
package report

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/skyward-data/attitude.report/internal/analysis"
)

// Figure size: 15x12 inches at 100 DPI gives a 1500x1200 pixel image.
const (
	figWidth  = 15 * vg.Inch
	figHeight = 12 * vg.Inch
	figDPI    = 100
)

// Series palette, matching the report's long-standing colour conventions:
// pitch/Q blue, roll/P red, heading/R green, quaternion w/x/y/z in
// purple/orange/brown/pink.
var (
	colBlue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colRed    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colGreen  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	colPurple = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	colOrange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	colBrown  = color.RGBA{R: 140, G: 86, B: 75, A: 255}
	colPink   = color.RGBA{R: 227, G: 119, B: 194, A: 255}
)

// RenderPNG draws the three stacked panels (Euler angles, quaternion
// components, angular rates) for one scenario and writes them to path.
func RenderPNG(res *analysis.Results, path string) error {
	euler, err := eulerPanel(res)
	if err != nil {
		return fmt.Errorf("euler panel: %w", err)
	}
	quats, err := quaternionPanel(res)
	if err != nil {
		return fmt.Errorf("quaternion panel: %w", err)
	}
	rates, err := ratePanel(res)
	if err != nil {
		return fmt.Errorf("rate panel: %w", err)
	}

	// The figure heading rides on the top panel's title.
	euler.Title.Text = fmt.Sprintf("Flight Analysis: %s\n%s", titleCase(res.Scenario), euler.Title.Text)

	img := vgimg.NewWith(vgimg.UseWH(figWidth, figHeight), vgimg.UseDPI(figDPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 3,
		Cols: 1,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	panels := [][]*plot.Plot{{euler}, {quats}, {rates}}
	canvases := plot.Align(panels, tiles, dc)
	for row, ps := range panels {
		ps[0].Draw(canvases[row][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

func eulerPanel(res *analysis.Results) (*plot.Plot, error) {
	p := newPanel("Euler Angles", "Degrees")
	series := []struct {
		name string
		ys   []float64
		col  color.Color
	}{
		{"Pitch", res.Pitch, colBlue},
		{"Roll", res.Roll, colRed},
		{"Heading", res.Heading, colGreen},
	}
	for _, s := range series {
		if err := addLine(p, res.Time, s.ys, s.name, s.col); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func quaternionPanel(res *analysis.Results) (*plot.Plot, error) {
	p := newPanel("Quaternion Components", "Component Value")
	series := []struct {
		name string
		ys   []float64
		col  color.Color
	}{
		{"w", res.QuatW, colPurple},
		{"x", res.QuatX, colOrange},
		{"y", res.QuatY, colBrown},
		{"z", res.QuatZ, colPink},
	}
	for _, s := range series {
		if err := addLine(p, res.Time, s.ys, s.name, s.col); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func ratePanel(res *analysis.Results) (*plot.Plot, error) {
	p := newPanel("Angular Rates", "Degrees/s")
	series := []struct {
		name string
		ys   []float64
		col  color.Color
	}{
		{"P (Roll Rate)", res.P, colRed},
		{"Q (Pitch Rate)", res.Q, colBlue},
		{"R (Yaw Rate)", res.R, colGreen},
	}
	for _, s := range series {
		if err := addLine(p, res.Time, s.ys, s.name, s.col); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newPanel(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p
}

func addLine(p *plot.Plot, xs, ys []float64, name string, col color.Color) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("series %s: %w", name, err)
	}
	line.Color = col
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

// titleCase uppercases the first letter of the scenario name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
