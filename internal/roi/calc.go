// Package roi compares the value of holding token 1 against locking it for
// a chosen duration and collecting token 2 rewards scaled by a day-based
// multiplier.
package roi

import "fmt"

// Convention selects how a table multiplier translates into the total
// token 2 reward. The two observed dataset conventions disagree, so the
// choice is explicit configuration.
type Convention string

const (
	// ConventionDirect treats the multiplier itself as the total reward.
	ConventionDirect Convention = "direct"
	// ConventionBaseline multiplies a fixed baseline reward by the
	// multiplier. The historical dataset used 396 as the reward at
	// multiplier 1.
	ConventionBaseline Convention = "baseline"
)

// DefaultBaseline is the token 2 reward at multiplier 1 under the baseline
// convention.
const DefaultBaseline = 396.0

// Result holds one holding-vs-locking comparison. Values are dollar terms
// per unit of token 1.
type Result struct {
	HoldingValue float64 `json:"holding_value"`
	LockingValue float64 `json:"locking_value"`
	Ratio        float64 `json:"roi_ratio"`
}

// Calculator computes ROI comparisons under a fixed reward convention.
// It is stateless apart from its configuration; Calculate is pure.
type Calculator struct {
	convention Convention
	baseline   float64
}

// NewCalculator creates a calculator for the given convention. The baseline
// is only consulted under ConventionBaseline; pass 0 to use DefaultBaseline.
func NewCalculator(convention Convention, baseline float64) (*Calculator, error) {
	switch convention {
	case ConventionDirect, ConventionBaseline:
	default:
		return nil, fmt.Errorf("unknown reward convention %q", convention)
	}
	if baseline == 0 {
		baseline = DefaultBaseline
	}
	if baseline < 0 {
		return nil, fmt.Errorf("reward baseline must be positive, got %v", baseline)
	}
	return &Calculator{convention: convention, baseline: baseline}, nil
}

// Convention returns the calculator's reward convention.
func (c *Calculator) Convention() Convention {
	return c.convention
}

// Baseline returns the baseline reward used under ConventionBaseline.
func (c *Calculator) Baseline() float64 {
	return c.baseline
}

// Reward converts a table multiplier into the total token 2 reward.
func (c *Calculator) Reward(multiplier float64) float64 {
	if c.convention == ConventionBaseline {
		return c.baseline * multiplier
	}
	return multiplier
}

// Calculate compares holding token 1 at token1Price against locking it and
// collecting the multiplier-scaled token 2 reward at token2Price. A zero
// holding value yields a ratio of 0 rather than an error.
func (c *Calculator) Calculate(token1Price, token2Price, multiplier float64) Result {
	holding := token1Price
	locking := c.Reward(multiplier) * token2Price

	ratio := 0.0
	if holding != 0 {
		ratio = locking / holding
	}

	return Result{
		HoldingValue: holding,
		LockingValue: locking,
		Ratio:        ratio,
	}
}
