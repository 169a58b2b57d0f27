package funds

import "fmt"

// Percent is a percentage value, e.g. Percent(0.12) is 0.12%.
type Percent float64

// String formats the value with two decimals, the fee notation.
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats the value as a whole percent with an explicit sign
// for zero and positive values, the return notation.
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.0f%%", float64(p))
}
