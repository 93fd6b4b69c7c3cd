package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/SathFenrir/lockroi/internal/config"
	"github.com/SathFenrir/lockroi/internal/export"
	"github.com/SathFenrir/lockroi/internal/roi"
	"github.com/SathFenrir/lockroi/internal/table"
	"github.com/SathFenrir/lockroi/internal/ui/component"
	"github.com/SathFenrir/lockroi/internal/ui/style"
)

// Slider indices in the input list.
const (
	inputToken1 = iota
	inputToken2
	inputDay
	inputCount
)

// Model is the interactive holding-vs-locking calculator.
type Model struct {
	cfg      *config.Config
	logger   *zap.Logger
	cache    *table.Cache
	calc     *roi.Calculator
	tbl      *table.Table
	exporter *export.CurveExporter

	keyMap  KeyMap
	sliders [inputCount]*component.Slider
	chart   *component.BarChart
	helpBar *component.HelpBar

	focus  int
	status string
	width  int
	height int
}

// NewModel builds the calculator model over an already loaded table.
func NewModel(cfg *config.Config, tbl *table.Table, cache *table.Cache, calc *roi.Calculator, logger *zap.Logger) *Model {
	m := &Model{
		cfg:      cfg,
		logger:   logger,
		cache:    cache,
		calc:     calc,
		tbl:      tbl,
		exporter: export.NewCurveExporter(logger),
		keyMap:   DefaultKeyMap(),
		chart:    component.NewBarChart(40),
		helpBar:  component.NewHelpBar(),
	}

	m.sliders[inputToken1] = component.NewSlider("Token 1 Price ($)", cfg.Token1.Min, cfg.Token1.Max, cfg.Token1.Step).
		SetValue(cfg.Token1.Default)
	m.sliders[inputToken2] = component.NewSlider("Token 2 Price ($)", cfg.Token2.Min, cfg.Token2.Max, cfg.Token2.Step).
		SetValue(cfg.Token2.Default)
	m.sliders[inputDay] = component.NewSlider("Days Locked Up", float64(tbl.MinDay()), float64(tbl.MaxDay()), 1).
		SetFormat("%d").
		SetValue(float64(tbl.ClampDay(cfg.DefaultDay)))

	m.sliders[m.focus].SetFocused(true)
	m.helpBar.SetKeyBindings(m.keyMap.ShortHelp())

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpBar.SetWidth(msg.Width)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Down), key.Matches(msg, m.keyMap.Tab):
			m.moveFocus(1)
		case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.ShiftTab):
			m.moveFocus(-1)
		case key.Matches(msg, m.keyMap.Left):
			m.sliders[m.focus].Decrease()
			m.status = ""
		case key.Matches(msg, m.keyMap.Right):
			m.sliders[m.focus].Increase()
			m.status = ""
		case key.Matches(msg, m.keyMap.Reload):
			return m, m.reloadTable()
		case key.Matches(msg, m.keyMap.Export):
			return m, m.exportCurve()
		}

	case TableReloadedMsg:
		if msg.Err != nil {
			m.status = style.ErrorStyle.Render(fmt.Sprintf("Reload failed: %v", msg.Err))
			m.logger.Error("Table reload failed", zap.Error(msg.Err))
			break
		}
		m.tbl = msg.Table
		m.resetDaySlider()
		m.status = style.SuccessStyle.Render(fmt.Sprintf("Table reloaded (%d rows)", msg.Table.Len()))

	case CurveExportedMsg:
		if msg.Err != nil {
			m.status = style.ErrorStyle.Render(fmt.Sprintf("Export failed: %v", msg.Err))
			m.logger.Error("Curve export failed", zap.Error(msg.Err))
			break
		}
		m.status = style.SuccessStyle.Render("Curve exported to " + msg.Path)
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	m.sliders[m.focus].SetFocused(false)
	m.focus = (m.focus + delta + inputCount) % inputCount
	m.sliders[m.focus].SetFocused(true)
}

// resetDaySlider rebinds the day slider to the reloaded table's range while
// keeping the chosen day where possible.
func (m *Model) resetDaySlider() {
	day := m.tbl.ClampDay(m.sliders[inputDay].IntValue())
	m.sliders[inputDay] = component.NewSlider("Days Locked Up", float64(m.tbl.MinDay()), float64(m.tbl.MaxDay()), 1).
		SetFormat("%d").
		SetValue(float64(day)).
		SetFocused(m.focus == inputDay)
}

func (m *Model) reloadTable() tea.Cmd {
	source := m.cfg.TablePath
	return func() tea.Msg {
		tbl, err := m.cache.Reload(source)
		return TableReloadedMsg{Table: tbl, Err: err}
	}
}

func (m *Model) exportCurve() tea.Cmd {
	tbl := m.tbl
	opts := export.Options{
		Format:      export.FormatCSV,
		OutputDir:   "exports",
		Token1Price: m.sliders[inputToken1].Value(),
		Token2Price: m.sliders[inputToken2].Value(),
	}
	return func() tea.Msg {
		path, err := m.exporter.ExportCurve(tbl, m.calc, opts)
		return CurveExportedMsg{Path: path, Err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var out strings.Builder

	out.WriteString(style.TitleStyle.Render("ROI Comparison: Holding vs. Locking"))
	out.WriteString("\n")

	inputs := make([]string, 0, inputCount)
	for _, s := range m.sliders {
		inputs = append(inputs, s.View())
	}
	out.WriteString(style.PanelStyle.Render(strings.Join(inputs, "\n")))
	out.WriteString("\n")

	out.WriteString(m.resultsView())

	if m.status != "" {
		out.WriteString("\n")
		out.WriteString(m.status)
	}

	out.WriteString("\n")
	out.WriteString(m.helpBar.View())

	return out.String()
}

// resultsView looks up the chosen day and renders the comparison, or the
// day-not-found message. A missing day only suppresses this query's result;
// the sliders stay live.
func (m *Model) resultsView() string {
	day := m.sliders[inputDay].IntValue()

	row, err := m.tbl.FindRow(day)
	if err != nil {
		if errors.Is(err, table.ErrDayNotFound) {
			return style.PanelStyle.Render(
				style.ErrorStyle.Render(fmt.Sprintf("No matching row found for day=%d", day)))
		}
		return style.PanelStyle.Render(style.ErrorStyle.Render(err.Error()))
	}

	token1 := m.sliders[inputToken1].Value()
	token2 := m.sliders[inputToken2].Value()
	result := m.calc.Calculate(token1, token2, row.Multiplier)

	summary := []string{
		fmt.Sprintf("%s $%.2f", style.LabelStyle.Render("Token 1 Price:       "), token1),
		fmt.Sprintf("%s $%.2f", style.LabelStyle.Render("Token 2 Price:       "), token2),
		fmt.Sprintf("%s %d", style.LabelStyle.Render("Chosen Day (Locked): "), day),
		fmt.Sprintf("%s %.6f", style.LabelStyle.Render("Day's Multiplier:    "), row.Multiplier),
		"",
		fmt.Sprintf("%s $%.2f", style.LabelStyle.Render("Holding Value:       "), result.HoldingValue),
		fmt.Sprintf("%s $%.2f", style.LabelStyle.Render("Locking Value:       "), result.LockingValue),
		fmt.Sprintf("%s %.2f", style.LabelStyle.Render("ROI (Lock / Hold):   "), result.Ratio),
		"",
		m.verdictView(result.Verdict()),
	}

	palette := style.DefaultPalette()
	m.chart.
		SetTitle("Dollar Value per Token 1").
		SetBars([]component.Bar{
			{Label: "Holding Token 1", Value: result.HoldingValue, Color: palette.Holding},
			{Label: "Locking Token 1", Value: result.LockingValue, Color: palette.Locking},
		}).
		SetAnnotation(fmt.Sprintf("Day: %d   Multiplier: %.4f", day, row.Multiplier))

	left := style.PanelStyle.Render(strings.Join(summary, "\n"))
	right := style.PanelStyle.Render(m.chart.View())

	return left + "\n" + right
}

func (m *Model) verdictView(v roi.Verdict) string {
	switch v {
	case roi.LockingWins:
		return style.SuccessStyle.Render("Result: " + v.String())
	case roi.HoldingWins:
		return style.WarningStyle.Render("Result: " + v.String())
	default:
		return style.MutedStyle.Render("Result: " + v.String())
	}
}
