package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/skyward-data/attitude.report/internal/analysis"
)

// RenderHTML writes a self-contained interactive page with the same three
// panels as the PNG figure. Each panel is an ECharts line chart with the
// series selectable through the legend.
func RenderHTML(res *analysis.Results, path string) error {
	title := fmt.Sprintf("Flight Analysis: %s", titleCase(res.Scenario))

	euler := lineChart(title+" — Euler Angles", "Degrees", res.Time, []namedSeries{
		{"Pitch", res.Pitch},
		{"Roll", res.Roll},
		{"Heading", res.Heading},
	})
	quats := lineChart("Quaternion Components", "Component Value", res.Time, []namedSeries{
		{"w", res.QuatW},
		{"x", res.QuatX},
		{"y", res.QuatY},
		{"z", res.QuatZ},
	})
	rates := lineChart("Angular Rates", "Degrees/s", res.Time, []namedSeries{
		{"P (Roll Rate)", res.P},
		{"Q (Pitch Rate)", res.Q},
		{"R (Yaw Rate)", res.R},
	})

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(euler, quats, rates)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

type namedSeries struct {
	name string
	ys   []float64
}

func lineChart(title, yName string, time []float64, series []namedSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1400px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)

	xs := make([]string, len(time))
	for i, t := range time {
		xs[i] = fmt.Sprintf("%.1f", t)
	}
	line.SetXAxis(xs)

	for _, s := range series {
		data := make([]opts.LineData, len(s.ys))
		for i, v := range s.ys {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.name, data)
	}
	return line
}
