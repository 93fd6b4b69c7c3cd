package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/SathFenrir/lockroi/internal/roi"
	"github.com/SathFenrir/lockroi/internal/table"
	"go.uber.org/zap"
)

// Format represents the export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Options configures a curve export.
type Options struct {
	Format      Format
	OutputDir   string
	Token1Price float64
	Token2Price float64
}

// Point is the comparison at one table day.
type Point struct {
	Day        int     `json:"day"`
	Multiplier float64 `json:"multiplier"`
	Holding    float64 `json:"holding_value"`
	Locking    float64 `json:"locking_value"`
	Ratio      float64 `json:"roi_ratio"`
	Verdict    string  `json:"verdict"`
}

// Summary aggregates a full curve.
type Summary struct {
	Days         int     `json:"days"`
	MinDay       int     `json:"min_day"`
	MaxDay       int     `json:"max_day"`
	BreakEvenDay int     `json:"break_even_day"` // first day locking overtakes holding, -1 if never
	BestDay      int     `json:"best_day"`
	BestRatio    float64 `json:"best_ratio"`
	WorstDay     int     `json:"worst_day"`
	WorstRatio   float64 `json:"worst_ratio"`
	LockingWins  int     `json:"locking_wins"`
}

// CurveExporter writes holding-vs-locking comparison curves to disk.
type CurveExporter struct {
	logger *zap.Logger
}

// NewCurveExporter creates a new curve exporter.
func NewCurveExporter(logger *zap.Logger) *CurveExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CurveExporter{logger: logger}
}

// Curve evaluates the comparison for every day in the table at the given
// prices, sorted by day.
func Curve(tbl *table.Table, calc *roi.Calculator, token1Price, token2Price float64) []Point {
	rows := tbl.Rows()
	points := make([]Point, 0, len(rows))
	seen := make(map[int]bool, len(rows))

	for _, row := range rows {
		// First row wins on duplicate days, same as FindRow.
		if seen[row.Day] {
			continue
		}
		seen[row.Day] = true

		result := calc.Calculate(token1Price, token2Price, row.Multiplier)
		points = append(points, Point{
			Day:        row.Day,
			Multiplier: row.Multiplier,
			Holding:    result.HoldingValue,
			Locking:    result.LockingValue,
			Ratio:      result.Ratio,
			Verdict:    result.Verdict().Label(),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
	return points
}

// Summarize computes aggregate statistics over a curve.
func Summarize(points []Point) Summary {
	summary := Summary{
		Days:         len(points),
		BreakEvenDay: -1,
	}
	if len(points) == 0 {
		return summary
	}

	summary.MinDay = points[0].Day
	summary.MaxDay = points[len(points)-1].Day
	summary.BestDay = points[0].Day
	summary.BestRatio = points[0].Ratio
	summary.WorstDay = points[0].Day
	summary.WorstRatio = points[0].Ratio

	for _, p := range points {
		if p.Ratio > summary.BestRatio {
			summary.BestDay, summary.BestRatio = p.Day, p.Ratio
		}
		if p.Ratio < summary.WorstRatio {
			summary.WorstDay, summary.WorstRatio = p.Day, p.Ratio
		}
		if p.Ratio > 1 {
			summary.LockingWins++
			if summary.BreakEvenDay == -1 {
				summary.BreakEvenDay = p.Day
			}
		}
	}
	return summary
}

// ExportCurve evaluates and writes the full comparison curve, returning the
// output path.
func (ce *CurveExporter) ExportCurve(tbl *table.Table, calc *roi.Calculator, options Options) (string, error) {
	points := Curve(tbl, calc, options.Token1Price, options.Token2Price)
	if len(points) == 0 {
		return "", fmt.Errorf("no rows to export")
	}

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(options.OutputDir, ce.generateFilename(options))

	var err error
	switch options.Format {
	case FormatCSV:
		err = ce.exportToCSV(points, outputPath)
	case FormatJSON:
		err = ce.exportToJSON(points, outputPath)
	default:
		err = fmt.Errorf("unsupported format: %s", options.Format)
	}
	if err != nil {
		return "", err
	}

	ce.logger.Info("ROI curve exported",
		zap.String("file", outputPath),
		zap.Int("days", len(points)),
		zap.String("format", string(options.Format)))

	return outputPath, nil
}

// generateFilename creates a timestamped filename for the export.
func (ce *CurveExporter) generateFilename(options Options) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("roi_curve_%s.%s", timestamp, options.Format)
}

func (ce *CurveExporter) exportToCSV(points []Point, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"day", "multiplier", "holding_value", "locking_value", "roi_ratio", "verdict"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range points {
		record := []string{
			strconv.Itoa(p.Day),
			strconv.FormatFloat(p.Multiplier, 'f', -1, 64),
			strconv.FormatFloat(p.Holding, 'f', -1, 64),
			strconv.FormatFloat(p.Locking, 'f', -1, 64),
			strconv.FormatFloat(p.Ratio, 'f', -1, 64),
			p.Verdict,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func (ce *CurveExporter) exportToJSON(points []Point, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	exportData := struct {
		ExportTime time.Time `json:"export_time"`
		Days       int       `json:"days"`
		Summary    Summary   `json:"summary"`
		Points     []Point   `json:"points"`
	}{
		ExportTime: time.Now(),
		Days:       len(points),
		Summary:    Summarize(points),
		Points:     points,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
