package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SathFenrir/lockroi/internal/ui/style"
)

// Bar is one labeled category in a comparison chart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders a small horizontal bar comparison with per-bar dollar
// labels and an optional annotation block.
type BarChart struct {
	title      string
	bars       []Bar
	width      int
	annotation string

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	annotStyle lipgloss.Style
}

// NewBarChart creates an empty bar chart of the given track width.
func NewBarChart(width int) *BarChart {
	palette := style.DefaultPalette()

	return &BarChart{
		width: width,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text),

		valueStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Bold(true),

		annotStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true),
	}
}

// SetTitle sets the chart title.
func (b *BarChart) SetTitle(title string) *BarChart {
	b.title = title
	return b
}

// SetBars replaces the chart's bars.
func (b *BarChart) SetBars(bars []Bar) *BarChart {
	b.bars = make([]Bar, len(bars))
	copy(b.bars, bars)
	return b
}

// SetWidth sets the maximum bar track width in cells.
func (b *BarChart) SetWidth(width int) *BarChart {
	b.width = width
	return b
}

// SetAnnotation sets the annotation block rendered under the bars.
func (b *BarChart) SetAnnotation(annotation string) *BarChart {
	b.annotation = annotation
	return b
}

// View renders the chart. Bars are scaled against the largest value plus
// 20% headroom so the longest bar never fills the whole track.
func (b *BarChart) View() string {
	var out strings.Builder

	if b.title != "" {
		out.WriteString(b.titleStyle.Render(b.title))
		out.WriteString("\n\n")
	}

	scale := b.maxValue() * 1.2
	if scale <= 0 {
		scale = 1
	}

	labelWidth := 0
	for _, bar := range b.bars {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
	}

	for _, bar := range b.bars {
		filled := int(math.Round(bar.Value / scale * float64(b.width)))
		if filled < 0 {
			filled = 0
		} else if filled > b.width {
			filled = b.width
		}
		// Non-zero values always get a visible bar.
		if filled == 0 && bar.Value > 0 {
			filled = 1
		}

		track := lipgloss.NewStyle().Foreground(bar.Color).Render(strings.Repeat("█", filled))
		label := b.labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, bar.Label))
		value := b.valueStyle.Render(fmt.Sprintf("$%.2f", bar.Value))

		out.WriteString(fmt.Sprintf("%s  %s %s\n", label, track, value))
	}

	if b.annotation != "" {
		out.WriteString("\n")
		out.WriteString(b.annotStyle.Render(b.annotation))
	}

	return out.String()
}

func (b *BarChart) maxValue() float64 {
	max := 0.0
	for _, bar := range b.bars {
		if bar.Value > max {
			max = bar.Value
		}
	}
	return max
}
