package funds

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// unknownFee is the sort key for records without a parseable fee, so they
// always trail the list.
var unknownFee = decimal.NewFromInt(999)

// feeValue parses the numeric value out of a fee string like "0.20%".
// The N/A sentinel, and any other unparseable fee, sorts as 999.
func feeValue(fee string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSuffix(fee, "%"))
	if err != nil {
		return unknownFee
	}
	return v
}

// SortByFee sorts a market's records ascending by fee, in place. The sort
// is stable: records with equal fees keep their accumulation order.
func SortByFee(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return feeValue(records[i].Fee).LessThan(feeValue(records[j].Fee))
	})
}
