package roi

// Verdict is the qualitative comparison of locking against holding.
type Verdict int

const (
	BreakEven Verdict = iota
	LockingWins
	HoldingWins
)

// Classify compares the ROI ratio against 1.0 exactly; there is no
// tolerance band around break-even.
func Classify(ratio float64) Verdict {
	switch {
	case ratio > 1:
		return LockingWins
	case ratio < 1:
		return HoldingWins
	default:
		return BreakEven
	}
}

// Verdict classifies the result's ratio.
func (r Result) Verdict() Verdict {
	return Classify(r.Ratio)
}

// String returns the user-facing verdict text.
func (v Verdict) String() string {
	switch v {
	case LockingWins:
		return "Locking produces a higher ROI than holding."
	case HoldingWins:
		return "Holding is more profitable than locking."
	default:
		return "The strategies are at break-even."
	}
}

// Label returns a short tag for tabular output.
func (v Verdict) Label() string {
	switch v {
	case LockingWins:
		return "locking"
	case HoldingWins:
		return "holding"
	default:
		return "break-even"
	}
}
