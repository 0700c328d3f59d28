// # internal/metrics/curve.go
package metrics

import "math"

// curveParams shapes the shared four-zone scoring curve: a flat excellent
// zone, two linear degradation zones, and an exponential tail past the poor
// boundary. Z1+Z2+Z3+Z4 = 100 keeps the curve continuous and monotone.
type curveParams struct {
	Z1, Z2, Z3, Z4 float64
	K              float64 // tail decay constant, in units of the statistic
}

var (
	cyclomaticCurve  = curveParams{Z1: 20, Z2: 30, Z3: 30, Z4: 20, K: 10}
	cognitiveCurve   = curveParams{Z1: 15, Z2: 35, Z3: 35, Z4: 15, K: 12}
	nestingCurve     = curveParams{Z1: 20, Z2: 30, Z3: 40, Z4: 10, K: 2}
	funcLengthCurve  = curveParams{Z1: 15, Z2: 35, Z3: 40, Z4: 10, K: 30}
	fileLengthCurve  = curveParams{Z1: 15, Z2: 35, Z3: 40, Z4: 10, K: 200}
	paramCurve       = curveParams{Z1: 20, Z2: 30, Z3: 40, Z4: 10, K: 2}
	duplicationCurve = curveParams{Z1: 20, Z2: 30, Z3: 40, Z4: 10, K: 15}
	errHandlingCurve = curveParams{Z1: 20, Z2: 30, Z3: 40, Z4: 10, K: 20}
)

// zoneScore maps a statistic through the four-zone curve over a threshold
// quadruple. 100 is best; the result never increases as x grows.
func zoneScore(x float64, t ThresholdConfig, c curveParams) float64 {
	switch {
	case x <= t.Excellent:
		return 100
	case x <= t.Good:
		return 100 - (x-t.Excellent)/(t.Good-t.Excellent)*c.Z1
	case x <= t.Acceptable:
		return (100 - c.Z1) - (x-t.Good)/(t.Acceptable-t.Good)*c.Z2
	case x <= t.Poor:
		return (100 - c.Z1 - c.Z2) - (x-t.Acceptable)/(t.Poor-t.Acceptable)*c.Z3
	default:
		return math.Max(0, c.Z4*math.Exp(-(x-t.Poor)/c.K))
	}
}

// severityFor derives severity from the worst-case statistic, never the
// average.
func severityFor(worst float64, t ThresholdConfig) Severity {
	switch {
	case worst <= t.Good:
		return SeverityInfo
	case worst <= t.Acceptable:
		return SeverityWarning
	case worst <= t.Poor:
		return SeverityError
	default:
		return SeverityCritical
	}
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
