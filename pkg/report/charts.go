package report

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
)

const (
	chartWidth    = 900
	barHeight     = 28
	barGap        = 8
	marginLeft    = 180.0
	marginTop     = 60.0
	marginBottom  = 40.0
	positiveColor = "#2e7d32"
	negativeColor = "#c62828"
	expectedColor = "#90a4ae"
	actualColor   = "#1565c0"
)

// GenerateCharts writes the full chart set for an analysis run into outDir.
// Returns the paths of the files written.
func GenerateCharts(metrics []*luck.LuckMetrics, outDir string) ([]string, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("no metrics to chart")
	}

	var written []string

	rankings := filepath.Join(outDir, "luck_rankings.svg")
	if err := LuckRankingsChart(metrics).Save(rankings); err != nil {
		return written, err
	}
	written = append(written, rankings)

	wins := filepath.Join(outDir, "expected_wins.svg")
	if err := ExpectedWinsChart(metrics).Save(wins); err != nil {
		return written, err
	}
	written = append(written, wins)

	dist := filepath.Join(outDir, "luck_distribution.svg")
	if err := LuckDistributionChart(metrics).Save(dist); err != nil {
		return written, err
	}
	written = append(written, dist)

	logger.Info("Charts written", len(written))
	return written, nil
}

// LuckRankingsChart renders a horizontal bar per team, most unlucky at the
// top, bars diverging from a central zero line
func LuckRankingsChart(metrics []*luck.LuckMetrics) *SVGDocument {
	height := int(marginTop+marginBottom) + len(metrics)*(barHeight+barGap)
	doc := NewSVGDocument(chartWidth, height, "Season Luck Rankings")

	maxAbs := 1.0
	for _, m := range metrics {
		if a := math.Abs(m.TotalLuckScore); a > maxAbs {
			maxAbs = a
		}
	}

	plotWidth := float64(chartWidth) - marginLeft - 40
	zeroX := marginLeft + plotWidth/2
	scale := (plotWidth / 2) / maxAbs

	doc.Line(zeroX, marginTop-10, zeroX, float64(height)-marginBottom+10, "#999999", 1)

	for i, m := range metrics {
		y := marginTop + float64(i)*(barHeight+barGap)
		w := math.Abs(m.TotalLuckScore) * scale

		color := positiveColor
		x := zeroX
		if m.TotalLuckScore < 0 {
			color = negativeColor
			x = zeroX - w
		}

		doc.Text(marginLeft-10, y+barHeight*0.7, m.TeamName, 13, "#333333", "end", false)
		doc.Rect(x, y, w, barHeight, color, "none")

		label := fmt.Sprintf("%.1f", m.TotalLuckScore)
		if m.TotalLuckScore < 0 {
			doc.Text(x-5, y+barHeight*0.7, label, 12, "#555555", "end", false)
		} else {
			doc.Text(x+w+5, y+barHeight*0.7, label, 12, "#555555", "start", false)
		}
	}

	return doc
}

// ExpectedWinsChart renders grouped bars of actual versus deserved wins
func ExpectedWinsChart(metrics []*luck.LuckMetrics) *SVGDocument {
	height := int(marginTop+marginBottom) + len(metrics)*(barHeight*2+barGap*2)
	doc := NewSVGDocument(chartWidth, height, "Actual vs Deserved Wins")

	maxWins := 1
	for _, m := range metrics {
		if m.ActualWins > maxWins {
			maxWins = m.ActualWins
		}
		if m.ShouldHaveWins > maxWins {
			maxWins = m.ShouldHaveWins
		}
	}

	plotWidth := float64(chartWidth) - marginLeft - 60
	scale := plotWidth / float64(maxWins)

	for i, m := range metrics {
		y := marginTop + float64(i)*(barHeight*2+barGap*2)

		doc.Text(marginLeft-10, y+barHeight, m.TeamName, 13, "#333333", "end", false)

		actualW := float64(m.ActualWins) * scale
		doc.Rect(marginLeft, y, actualW, barHeight-2, actualColor, "none")
		doc.Text(marginLeft+actualW+5, y+barHeight*0.7, fmt.Sprintf("%d actual", m.ActualWins), 11, "#555555", "start", false)

		expectedW := float64(m.ShouldHaveWins) * scale
		doc.Rect(marginLeft, y+barHeight, expectedW, barHeight-2, expectedColor, "none")
		doc.Text(marginLeft+expectedW+5, y+barHeight*1.7, fmt.Sprintf("%d deserved", m.ShouldHaveWins), 11, "#555555", "start", false)
	}

	return doc
}

// LuckDistributionChart renders a histogram of per-team average weekly luck
func LuckDistributionChart(metrics []*luck.LuckMetrics) *SVGDocument {
	const bins = 9
	height := 420
	doc := NewSVGDocument(chartWidth, height, "Average Weekly Luck Distribution")

	lo, hi := metrics[0].AvgLuckPerWeek, metrics[0].AvgLuckPerWeek
	for _, m := range metrics {
		if m.AvgLuckPerWeek < lo {
			lo = m.AvgLuckPerWeek
		}
		if m.AvgLuckPerWeek > hi {
			hi = m.AvgLuckPerWeek
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	counts := make([]int, bins)
	binWidth := (hi - lo) / float64(bins)
	for _, m := range metrics {
		idx := int((m.AvgLuckPerWeek - lo) / binWidth)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	plotWidth := float64(chartWidth) - 120
	plotHeight := float64(height) - marginTop - 60
	colWidth := plotWidth / float64(bins)

	for i, c := range counts {
		h := float64(c) / float64(maxCount) * plotHeight
		x := 60 + float64(i)*colWidth
		y := marginTop + plotHeight - h

		doc.Rect(x+2, y, colWidth-4, h, actualColor, "none")

		binLo := lo + float64(i)*binWidth
		doc.Text(x+colWidth/2, marginTop+plotHeight+20, fmt.Sprintf("%.0f", binLo), 11, "#555555", "middle", false)
		if c > 0 {
			doc.Text(x+colWidth/2, y-5, fmt.Sprintf("%d", c), 11, "#555555", "middle", false)
		}
	}

	doc.Line(60, marginTop+plotHeight, 60+plotWidth, marginTop+plotHeight, "#999999", 1)

	return doc
}
