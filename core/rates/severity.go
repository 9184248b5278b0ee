package rates

// Severity is a qualitative band for a corrosion rate
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeveritySevere   Severity = "severe"
)

// band is an upper bound (inclusive except for the first) on a rate in mm/y
type band struct {
	upTo     float64
	severity Severity
}

// NACE RP0775 qualitative categories for carbon steel
var (
	uniformBands = []band{
		{0.025, SeverityLow},
		{0.12, SeverityModerate},
		{0.25, SeverityHigh},
	}
	pittingBands = []band{
		{0.13, SeverityLow},
		{0.20, SeverityModerate},
		{0.38, SeverityHigh},
	}
)

func classify(rate float64, bands []band) Severity {
	if rate < bands[0].upTo {
		return bands[0].severity
	}
	for _, b := range bands[1:] {
		if rate <= b.upTo {
			return b.severity
		}
	}
	return SeveritySevere
}

// UniformSeverity classifies a uniform (weight-loss or LPR) rate in mm/y
func UniformSeverity(rateMMPerYear float64) Severity {
	return classify(rateMMPerYear, uniformBands)
}

// PittingSeverity classifies an extrapolated pitting rate in mm/y
func PittingSeverity(rateMMPerYear float64) Severity {
	return classify(rateMMPerYear, pittingBands)
}
