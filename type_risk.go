package funds

// Risk is the three-level risk classification, localized in Swedish.
type Risk string

const (
	RiskLow    Risk = "Låg"
	RiskMedium Risk = "Medel"
	RiskHigh   Risk = "Hög"
)

// RiskFromRating maps a numeric provider rating onto the three levels.
// Fractional ratings are truncated toward zero before the comparison.
// An absent rating counts as medium, not as a fourth state.
func RiskFromRating(rating *float64) Risk {
	if rating == nil {
		return RiskMedium
	}
	switch r := int(*rating); {
	case r <= 2:
		return RiskLow
	case r <= 4:
		return RiskMedium
	default:
		return RiskHigh
	}
}
