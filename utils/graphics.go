package utils

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type LineChart struct {
	Chart    *chart2d.Chart2D
	ColorMap *utils2.ColorMap
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart:    chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(fmin), float32(fmax)),
		ColorMap: utils2.NewColorMap(-1, 1, 1),
	}
	go lc.Chart.Plot()
	return
}

// Plot adds a solid line through (x, f). lineColor goes from -1 (red) to 1 (blue).
func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, lineColor float64, lineName string) {
	lc.addSeries(x, f, lineName, lineColor, chart2d.NoGlyph, chart2d.Solid)
	time.Sleep(graphDelay)
}

// Points adds unconnected circle glyphs at (x, f).
func (lc *LineChart) Points(graphDelay time.Duration, x, f []float64, lineColor float64, name string) {
	lc.addSeries(x, f, name, lineColor, chart2d.CircleGlyph, chart2d.NoLine)
	time.Sleep(graphDelay)
}

func (lc *LineChart) addSeries(x, f []float64, name string, color float64, gl chart2d.GlyphType, lt chart2d.LineType) {
	if err := lc.Chart.AddSeries(name, x, f, gl, lt, lc.ColorMap.GetRGB(float32(color))); err != nil {
		panic("unable to add graph series")
	}
}
