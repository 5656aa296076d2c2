package fees

// Gas limit fields of a GasLimitEntry
const (
	RegularTransaction = "regularTransaction"
	TokenTransaction   = "tokenTransaction"
)

// tokenValueDivisor approximates a token as worth a tenth of the base asset.
// It only moves a token spend into a threshold bucket of the standard tier and
// is not a price oracle.
const tokenValueDivisor = "10"

func isTokenSpend(currencyCode, baseCurrencyCode string) bool {
	return currencyCode != "" && currencyCode != baseCurrencyCode
}

// ScaleForComparison returns the amount compared against the standard tier
// thresholds: the native amount for a base asset spend, the native amount
// divided by ten (truncated) for a token spend.
func ScaleForComparison(nativeAmount, currencyCode, baseCurrencyCode string) (string, error) {
	if !isTokenSpend(currencyCode, baseCurrencyCode) {
		if _, err := ParseAmount(nativeAmount); err != nil {
			return "", err
		}
		return nativeAmount, nil
	}
	return Div(nativeAmount, tokenValueDivisor)
}

// GasLimitField returns which GasLimitEntry field applies to a spend
func GasLimitField(currencyCode, baseCurrencyCode string) string {
	if isTokenSpend(currencyCode, baseCurrencyCode) {
		return TokenTransaction
	}
	return RegularTransaction
}

// Limit returns the named gas limit field
func (e GasLimitEntry) Limit(field string) string {
	if field == TokenTransaction {
		return e.TokenTransaction
	}
	return e.RegularTransaction
}
