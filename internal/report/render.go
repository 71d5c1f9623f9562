package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const lineWidth = 2

// NewLineChart builds an echarts line chart with one series per dataset.
func NewLineChart(chart Chart, title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Top: "30px"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "強さ", Min: 0}),
	)
	line.SetXAxis(chart.Labels)

	for _, ds := range chart.Datasets {
		data := make([]opts.LineData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(ds.Label, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ds.BorderColor}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
		)
	}

	return line
}

// RenderHTML writes a standalone HTML page containing the chart.
func RenderHTML(w io.Writer, chart Chart, title string) error {
	return NewLineChart(chart, title).Render(w)
}
