package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SathFenrir/lockroi/internal/ui/style"
)

func TestBarChartView(t *testing.T) {
	palette := style.DefaultPalette()

	chart := NewBarChart(40).
		SetTitle("Dollar Value per Token 1").
		SetBars([]Bar{
			{Label: "Holding Token 1", Value: 2.94, Color: palette.Holding},
			{Label: "Locking Token 1", Value: 1903.85, Color: palette.Locking},
		}).
		SetAnnotation("Day: 113   Multiplier: 9.6154")

	view := chart.View()
	assert.Contains(t, view, "Dollar Value per Token 1")
	assert.Contains(t, view, "Holding Token 1")
	assert.Contains(t, view, "Locking Token 1")
	assert.Contains(t, view, "$2.94")
	assert.Contains(t, view, "$1903.85")
	assert.Contains(t, view, "Day: 113")
}

func TestBarChartScalingHeadroom(t *testing.T) {
	chart := NewBarChart(40).SetBars([]Bar{
		{Label: "A", Value: 120},
		{Label: "B", Value: 60},
	})

	lines := strings.Split(chart.View(), "\n")
	longest := strings.Count(lines[0], "█")
	shorter := strings.Count(lines[1], "█")

	// 20% headroom keeps the largest bar under the full track width.
	assert.Less(t, longest, 40)
	assert.Greater(t, longest, shorter)
	assert.InDelta(t, float64(longest)/2, float64(shorter), 1.0)
}

func TestBarChartTinyValueStillVisible(t *testing.T) {
	chart := NewBarChart(40).SetBars([]Bar{
		{Label: "Holding", Value: 0.01},
		{Label: "Locking", Value: 1903.85},
	})

	lines := strings.Split(chart.View(), "\n")
	assert.GreaterOrEqual(t, strings.Count(lines[0], "█"), 1, "non-zero value must render at least one cell")
}

func TestBarChartZeroValues(t *testing.T) {
	chart := NewBarChart(40).SetBars([]Bar{
		{Label: "Holding", Value: 0},
		{Label: "Locking", Value: 0},
	})

	view := chart.View()
	assert.Contains(t, view, "$0.00")
	assert.NotContains(t, view, "█")
}
