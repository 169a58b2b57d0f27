package funds

import "strings"

// NA is the placeholder for a field the provider had no data for.
const NA = "N/A"

// Record is the canonical fund record, the unit of both market lists.
// ISIN and ProviderID are omitted from the JSON when empty; curated rows
// never carry them.
type Record struct {
	Name          string `json:"name"`
	Index         string `json:"index"`
	Fee           string `json:"fee"`
	Return1Y      string `json:"return1y"`
	Return5Y      string `json:"return5y"`
	Risk          Risk   `json:"risk"`
	ISIN          string `json:"isin,omitempty"`
	Institutional bool   `json:"institutional"`
	ProviderID    string `json:"providerId,omitempty"`
}

// FormatFee renders an annual fee as a two-decimal percentage string.
// A zero charge is a real value ("0.00%"); only a missing one is N/A.
func FormatFee(v *float64) string {
	if v == nil {
		return NA
	}
	return Percent(*v).String()
}

// FormatReturn renders a trailing return as a signed whole-percent string.
func FormatReturn(v *float64) string {
	if v == nil {
		return NA
	}
	return Percent(*v).SignedString()
}

// institutionalKeywords identify share classes restricted to large or
// professional investors: generic terms, share-class markers and their
// Swedish equivalents, and pension funds.
var institutionalKeywords = []string{
	"institutional", "inst", "institution",
	"professional", "wholesale",
	"class i", "class z", "class p",
	"klass i", "klass z",
	"pension", "tjänstepension",
}

// IsInstitutional reports whether the fund name marks an institutional
// share class. The check is heuristic and case-insensitive.
func IsInstitutional(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range institutionalKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
