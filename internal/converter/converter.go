// Package converter converts native-unit amounts to the display currency.
// The conversion is presentation-only; transfer math always runs in the
// wallet's native unit.
package converter

type Converter interface {
	ToUSD(amount float64) (float64, error)
}

// FixedRate converts with a constant exchange rate. Used in tests and
// offline deployments.
type FixedRate float64

func (r FixedRate) ToUSD(amount float64) (float64, error) {
	return float64(r) * amount, nil
}
