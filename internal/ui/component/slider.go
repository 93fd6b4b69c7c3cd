package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SathFenrir/lockroi/internal/ui/style"
)

// Slider represents a bounded numeric input rendered as a filled track.
type Slider struct {
	label   string
	min     float64
	max     float64
	step    float64
	value   float64
	width   int
	format  string
	focused bool

	labelStyle   lipgloss.Style
	trackStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	valueStyle   lipgloss.Style
}

// NewSlider creates a slider over [min, max] with the given step.
func NewSlider(label string, min, max, step float64) *Slider {
	palette := style.DefaultPalette()

	return &Slider{
		label:  label,
		min:    min,
		max:    max,
		step:   step,
		value:  min,
		width:  30,
		format: "%.2f",

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true),

		trackStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Primary),

		valueStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Bold(true),
	}
}

// SetValue sets the current value, clamped into [min, max].
func (s *Slider) SetValue(value float64) *Slider {
	s.value = s.clamp(value)
	return s
}

// SetWidth sets the track width in cells.
func (s *Slider) SetWidth(width int) *Slider {
	s.width = width
	return s
}

// SetFormat sets the fmt verb used to print the current value.
func (s *Slider) SetFormat(format string) *Slider {
	s.format = format
	return s
}

// SetFocused marks the slider as the active input.
func (s *Slider) SetFocused(focused bool) *Slider {
	s.focused = focused
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// IntValue returns the current value rounded to the nearest integer.
func (s *Slider) IntValue() int {
	return int(math.Round(s.value))
}

// Focused reports whether the slider is the active input.
func (s *Slider) Focused() bool {
	return s.focused
}

// Label returns the slider's label.
func (s *Slider) Label() string {
	return s.label
}

// Increase moves the value up one step.
func (s *Slider) Increase() *Slider {
	return s.SetValue(s.snap(s.value + s.step))
}

// Decrease moves the value down one step.
func (s *Slider) Decrease() *Slider {
	return s.SetValue(s.snap(s.value - s.step))
}

// snap rounds to the step grid so repeated float additions do not drift.
func (s *Slider) snap(value float64) float64 {
	steps := math.Round((value - s.min) / s.step)
	return s.min + steps*s.step
}

func (s *Slider) clamp(value float64) float64 {
	if value < s.min {
		return s.min
	}
	if value > s.max {
		return s.max
	}
	return value
}

// View renders the slider as "Label  ◂██████░░░░▸ value".
func (s *Slider) View() string {
	filled := 0
	if s.max > s.min {
		ratio := (s.value - s.min) / (s.max - s.min)
		filled = int(math.Round(ratio * float64(s.width)))
	}
	if filled < 0 {
		filled = 0
	} else if filled > s.width {
		filled = s.width
	}

	track := strings.Repeat("█", filled) + strings.Repeat("░", s.width-filled)

	trackStyle := s.trackStyle
	marker := " "
	if s.focused {
		trackStyle = s.focusedStyle
		marker = "▸"
	}

	// Integer sliders format their rounded value instead.
	var valueText string
	if strings.Contains(s.format, "d") {
		valueText = fmt.Sprintf(s.format, s.IntValue())
	} else {
		valueText = fmt.Sprintf(s.format, s.value)
	}

	return fmt.Sprintf("%s %s %s %s",
		s.labelStyle.Render(fmt.Sprintf("%-22s", s.label)),
		marker,
		trackStyle.Render(track),
		s.valueStyle.Render(valueText),
	)
}
