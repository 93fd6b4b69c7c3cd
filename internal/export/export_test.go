package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SathFenrir/lockroi/internal/roi"
	"github.com/SathFenrir/lockroi/internal/table"
)

func testTable(t *testing.T) *table.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "multipliers.csv")
	content := "7,396,0.001\n30,396,0.01\n113,396,9.615405784\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := table.NewLoader(false, zap.NewNop()).Load(path)
	require.NoError(t, err)
	return tbl
}

func testCalculator(t *testing.T) *roi.Calculator {
	t.Helper()
	calc, err := roi.NewCalculator(roi.ConventionBaseline, 396)
	require.NoError(t, err)
	return calc
}

func TestCurve(t *testing.T) {
	points := Curve(testTable(t), testCalculator(t), 2.94, 0.5)

	require.Len(t, points, 3)
	assert.Equal(t, 7, points[0].Day, "points sorted by day")
	assert.Equal(t, 113, points[2].Day)

	// Every point is the same calculation FindRow+Calculate would produce.
	assert.InDelta(t, 2.94, points[0].Holding, 1e-12)
	assert.InDelta(t, 396*9.615405784*0.5, points[2].Locking, 1e-6)
	assert.Equal(t, "locking", points[2].Verdict)
	assert.Equal(t, "holding", points[0].Verdict)
}

func TestCurveDuplicateDaysFirstWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.csv")
	require.NoError(t, os.WriteFile(path, []byte("30,396,2.5\n30,396,99\n"), 0644))
	tbl, err := table.NewLoader(false, zap.NewNop()).Load(path)
	require.NoError(t, err)

	points := Curve(tbl, testCalculator(t), 1, 1)
	require.Len(t, points, 1)
	assert.InDelta(t, 2.5, points[0].Multiplier, 1e-12)
}

func TestSummarize(t *testing.T) {
	points := Curve(testTable(t), testCalculator(t), 2.94, 0.5)
	summary := Summarize(points)

	assert.Equal(t, 3, summary.Days)
	assert.Equal(t, 7, summary.MinDay)
	assert.Equal(t, 113, summary.MaxDay)
	assert.Equal(t, 113, summary.BreakEvenDay, "locking first overtakes holding at day 113")
	assert.Equal(t, 113, summary.BestDay)
	assert.Equal(t, 7, summary.WorstDay)
	assert.Equal(t, 1, summary.LockingWins)
}

func TestSummarizeEmptyAndNeverWinning(t *testing.T) {
	empty := Summarize(nil)
	assert.Equal(t, -1, empty.BreakEvenDay)

	path := filepath.Join(t.TempDir(), "low.csv")
	require.NoError(t, os.WriteFile(path, []byte("7,396,0.0001\n"), 0644))
	tbl, err := table.NewLoader(false, zap.NewNop()).Load(path)
	require.NoError(t, err)

	summary := Summarize(Curve(tbl, testCalculator(t), 10, 0.5))
	assert.Equal(t, -1, summary.BreakEvenDay)
	assert.Equal(t, 0, summary.LockingWins)
}

func TestExportCurveCSV(t *testing.T) {
	exporter := NewCurveExporter(zap.NewNop())
	outDir := t.TempDir()

	outputPath, err := exporter.ExportCurve(testTable(t), testCalculator(t), Options{
		Format:      FormatCSV,
		OutputDir:   outDir,
		Token1Price: 2.94,
		Token2Price: 0.5,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(outputPath, ".csv"))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three days")
	assert.Equal(t, []string{"day", "multiplier", "holding_value", "locking_value", "roi_ratio", "verdict"}, records[0])
	assert.Equal(t, "7", records[1][0])
}

func TestExportCurveJSON(t *testing.T) {
	exporter := NewCurveExporter(zap.NewNop())
	outDir := t.TempDir()

	outputPath, err := exporter.ExportCurve(testTable(t), testCalculator(t), Options{
		Format:      FormatJSON,
		OutputDir:   outDir,
		Token1Price: 2.94,
		Token2Price: 0.5,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded struct {
		Days    int     `json:"days"`
		Summary Summary `json:"summary"`
		Points  []Point `json:"points"`
	}
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, 3, decoded.Days)
	assert.Len(t, decoded.Points, 3)
	assert.Equal(t, 113, decoded.Summary.BestDay)
}

func TestExportCurveUnsupportedFormat(t *testing.T) {
	exporter := NewCurveExporter(zap.NewNop())

	_, err := exporter.ExportCurve(testTable(t), testCalculator(t), Options{
		Format:    Format("xml"),
		OutputDir: t.TempDir(),
	})
	assert.Error(t, err)
}
