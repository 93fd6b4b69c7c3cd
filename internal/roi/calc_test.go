package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculator(t *testing.T) {
	calc, err := NewCalculator(ConventionBaseline, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseline, calc.Baseline(), "zero baseline should fall back to default")

	calc, err = NewCalculator(ConventionDirect, 0)
	require.NoError(t, err)
	assert.Equal(t, ConventionDirect, calc.Convention())

	_, err = NewCalculator(Convention("compound"), 0)
	assert.Error(t, err, "unknown convention must be rejected")

	_, err = NewCalculator(ConventionBaseline, -1)
	assert.Error(t, err, "negative baseline must be rejected")
}

func TestCalculateBaselineConvention(t *testing.T) {
	calc, err := NewCalculator(ConventionBaseline, 396)
	require.NoError(t, err)

	result := calc.Calculate(2.94, 0.5, 9.615405784)

	assert.Equal(t, 2.94, result.HoldingValue)
	assert.InDelta(t, 396*9.615405784*0.5, result.LockingValue, 1e-9)
	assert.InDelta(t, 1903.850345, result.LockingValue, 1e-5)
	assert.InDelta(t, 647.57, result.Ratio, 0.01)
	assert.Equal(t, LockingWins, result.Verdict())
}

func TestCalculateDirectConvention(t *testing.T) {
	calc, err := NewCalculator(ConventionDirect, 0)
	require.NoError(t, err)

	result := calc.Calculate(2.94, 0.5, 9.615405784)

	assert.Equal(t, 2.94, result.HoldingValue)
	assert.InDelta(t, 4.807702892, result.LockingValue, 1e-9)
	assert.InDelta(t, 1.635, result.Ratio, 0.001)
	assert.Equal(t, LockingWins, result.Verdict())
}

func TestCalculateZeroToken2Price(t *testing.T) {
	for _, convention := range []Convention{ConventionDirect, ConventionBaseline} {
		calc, err := NewCalculator(convention, 0)
		require.NoError(t, err)

		result := calc.Calculate(5.0, 0, 123.456)
		assert.Equal(t, 0.0, result.LockingValue, "convention %s", convention)
		assert.Equal(t, 0.0, result.Ratio, "convention %s", convention)
	}
}

func TestCalculateZeroHoldingGuard(t *testing.T) {
	calc, err := NewCalculator(ConventionBaseline, 0)
	require.NoError(t, err)

	// Division by zero is defined to yield 0, not an error or Inf.
	result := calc.Calculate(0, 1.25, 3.5)
	assert.Equal(t, 0.0, result.HoldingValue)
	assert.Greater(t, result.LockingValue, 0.0)
	assert.Equal(t, 0.0, result.Ratio)
}

func TestClassifyVerdict(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Verdict
	}{
		{"locking wins", 1.0000001, LockingWins},
		{"holding wins", 0.999, HoldingWins},
		{"exact break-even", 1.0, BreakEven},
		{"zero ratio", 0, HoldingWins},
		{"large ratio", 647.57, LockingWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ratio))
		})
	}
}

func TestVerdictText(t *testing.T) {
	assert.Contains(t, LockingWins.String(), "higher ROI")
	assert.Contains(t, HoldingWins.String(), "more profitable")
	assert.Contains(t, BreakEven.String(), "break-even")

	assert.Equal(t, "locking", LockingWins.Label())
	assert.Equal(t, "holding", HoldingWins.Label())
	assert.Equal(t, "break-even", BreakEven.Label())
}

func TestCalculateIsPure(t *testing.T) {
	calc, err := NewCalculator(ConventionBaseline, 396)
	require.NoError(t, err)

	first := calc.Calculate(2.94, 0.5, 9.615405784)
	second := calc.Calculate(2.94, 0.5, 9.615405784)
	assert.Equal(t, first, second)
}
