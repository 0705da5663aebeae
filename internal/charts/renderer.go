package charts

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// Figure size
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// Chart titles and axis labels
const (
	TitleRevenueByCategory = "Revenue by Category"
	TitleMonthlyRevenue    = "Monthly Revenue Trend"
	TitleOrderDistribution = "Order Value Distribution"

	LabelCategory    = "Category"
	LabelMonth       = "Month"
	LabelRevenue     = "Revenue"
	LabelOrderAmount = "Order Amount"
	LabelFrequency   = "Frequency"
)

var (
	barColor  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	lineColor = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	histColor = color.RGBA{R: 205, G: 92, B: 92, A: 255}
)

// Renderer draws the sales figures
type Renderer struct {
	logger *slog.Logger
	bins   int
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a renderer. bins <= 0 falls back to the default
// histogram bin count.
func NewRenderer(logger *slog.Logger, bins int) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if bins <= 0 {
		bins = config.DefaultHistogramBins
	}
	return &Renderer{logger: logger, bins: bins, width: Width, height: Height}
}

// Bins returns the histogram bin count
func (r *Renderer) Bins() int {
	return r.bins
}

// RevenueByCategory draws one bar per category
func (r *Renderer) RevenueByCategory(data []domain.CategoryRevenue, path string) error {
	if len(data) == 0 {
		return errors.NewValidationError("no category revenue to plot")
	}

	p := newPlot(TitleRevenueByCategory, LabelCategory, LabelRevenue)

	values := make(plotter.Values, len(data))
	names := make([]string, len(data))
	for i, c := range data {
		values[i] = c.Revenue
		names[i] = c.Category
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return errors.NewRenderError("failed to build bar chart", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars, plotter.NewGrid())
	p.NominalX(names...)

	return r.save(p, path)
}

// MonthlyRevenue draws revenue per month as a line with point markers
func (r *Renderer) MonthlyRevenue(data []domain.MonthlyRevenue, path string) error {
	if len(data) == 0 {
		return errors.NewValidationError("no monthly revenue to plot")
	}

	p := newPlot(TitleMonthlyRevenue, LabelMonth, LabelRevenue)

	points := make(plotter.XYs, len(data))
	months := make([]string, len(data))
	for i, m := range data {
		points[i].X = float64(i)
		points[i].Y = m.Revenue
		months[i] = m.Month
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return errors.NewRenderError("failed to build line chart", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	scatter.Color = lineColor

	p.Add(line, scatter, plotter.NewGrid())
	p.NominalX(months...)

	return r.save(p, path)
}

// OrderDistribution draws a histogram of order amounts
func (r *Renderer) OrderDistribution(amounts []float64, path string) error {
	if len(amounts) == 0 {
		return errors.NewValidationError("no order amounts to plot")
	}

	p := newPlot(TitleOrderDistribution, LabelOrderAmount, LabelFrequency)

	hist, err := plotter.NewHist(plotter.Values(amounts), r.bins)
	if err != nil {
		return errors.NewRenderError("failed to build histogram", err)
	}
	hist.FillColor = histColor

	p.Add(hist, plotter.NewGrid())

	return r.save(p, path)
}

// RenderAll draws the three figures into paths. Sections without data are
// skipped with a warning; the first render failure is returned.
func (r *Renderer) RenderAll(summary domain.SalesSummary, amounts []float64, paths *config.Paths) ([]string, error) {
	jobs := []struct {
		name string
		path string
		draw func(string) error
	}{
		{"revenue_by_category", paths.RevenueByCategoryChart, func(p string) error {
			return r.RevenueByCategory(summary.CategoryRevenue, p)
		}},
		{"monthly_revenue", paths.MonthlyTrendChart, func(p string) error {
			return r.MonthlyRevenue(summary.MonthlyRevenue, p)
		}},
		{"order_distribution", paths.OrderValueHistogram, func(p string) error {
			return r.OrderDistribution(amounts, p)
		}},
	}

	written := make([]string, 0, len(jobs))
	for _, job := range jobs {
		err := job.draw(job.path)
		if errors.IsType(err, errors.ErrTypeValidation) {
			r.logger.Warn("skipping chart without data",
				slog.String("chart", job.name),
				slog.String("reason", err.Error()))
			continue
		}
		if err != nil {
			return written, err
		}
		written = append(written, job.path)
	}
	return written, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create figures directory", err).WithContext("path", path)
	}
	if err := p.Save(r.width, r.height, path); err != nil {
		return errors.NewRenderError(fmt.Sprintf("failed to save %s", filepath.Base(path)), err).
			WithContext("path", path)
	}

	r.logger.Info("chart saved",
		slog.String("title", p.Title.Text),
		slog.String("path", path))
	return nil
}
