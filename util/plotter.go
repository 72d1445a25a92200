package util

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"booking-server/models/review"
)

// PlotRatingDistribution renders an HTML page with the star distribution and
// the category averages of a venue's review summary.
func PlotRatingDistribution(w io.Writer, venueName string, summary review.Summary) error {
	stars := make([]string, 0, review.MaxRating)
	counts := make([]opts.BarData, 0, review.MaxRating)
	for b := 1; b <= review.MaxRating; b++ {
		stars = append(stars, strconv.Itoa(b)+"★")
		counts = append(counts, opts.BarData{Value: summary.Distribution[b]})
	}

	dist := charts.NewBar()
	dist.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: venueName + " reviews",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    venueName,
			Subtitle: fmt.Sprintf("%d reviews, average %.2f", summary.Count, summary.Average),
		}),
	)
	dist.SetXAxis(stars).AddSeries("Reviews", counts,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	var names []string
	var avgs []opts.BarData
	for _, c := range review.Categories {
		avg, ok := summary.CategoryAverages[c]
		if !ok {
			continue
		}
		names = append(names, c)
		avgs = append(avgs, opts.BarData{Value: fmt.Sprintf("%.2f", avg)})
	}

	cats := charts.NewBar()
	cats.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "800px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Category averages"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: review.MaxRating}),
	)
	cats.SetXAxis(names).AddSeries("Average", avgs)

	page := components.NewPage()
	page.SetPageTitle(venueName + " reviews")
	page.AddCharts(dist, cats)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
