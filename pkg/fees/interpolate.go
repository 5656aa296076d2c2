package fees

import "math/big"

// InterpolateStandard computes the standard tier gas price for scaledAmount.
// At or above StandardFeeHighAmount it is StandardFeeHigh, at or below
// StandardFeeLowAmount it is StandardFeeLow, and in between it grows linearly:
//
//	StandardFeeLow + (scaled-lowAmount)*(feeHigh-feeLow) / (highAmount-lowAmount)
//
// The product is taken before the division and the division truncates, so the
// result leans toward the low fee.
func InterpolateStandard(scaledAmount string, entry GasPriceEntry) (string, error) {
	amount, err := ParseAmount(scaledAmount)
	if err != nil {
		return "", newError(KindInvalidNativeAmount, "nativeAmount", scaledAmount)
	}
	lowAmount, err := entry.field("standardFeeLowAmount", entry.StandardFeeLowAmount)
	if err != nil {
		return "", err
	}
	highAmount, err := entry.field("standardFeeHighAmount", entry.StandardFeeHighAmount)
	if err != nil {
		return "", err
	}

	if amount.Cmp(highAmount) >= 0 {
		if _, err := entry.field("standardFeeHigh", entry.StandardFeeHigh); err != nil {
			return "", err
		}
		return entry.StandardFeeHigh, nil
	}
	if amount.Cmp(lowAmount) <= 0 {
		if _, err := entry.field("standardFeeLow", entry.StandardFeeLow); err != nil {
			return "", err
		}
		return entry.StandardFeeLow, nil
	}

	lowFee, err := entry.field("standardFeeLow", entry.StandardFeeLow)
	if err != nil {
		return "", err
	}
	highFee, err := entry.field("standardFeeHigh", entry.StandardFeeHigh)
	if err != nil {
		return "", err
	}

	// lowAmount < amount < highAmount here, so amountSpan is positive
	amountSpan := new(big.Int).Sub(highAmount, lowAmount)
	feeSpan := new(big.Int).Sub(highFee, lowFee)
	amountOffset := new(big.Int).Sub(amount, lowAmount)

	increment := new(big.Int).Mul(amountOffset, feeSpan)
	increment.Quo(increment, amountSpan)

	return increment.Add(lowFee, increment).String(), nil
}

// field parses one gas price value, reporting InvalidGasPrice on failure
func (e GasPriceEntry) field(name, value string) (*big.Int, error) {
	n, err := ParseAmount(value)
	if err != nil || n.Sign() < 0 {
		return nil, newError(KindInvalidGasPrice, "gasPrice."+name, value)
	}
	return n, nil
}
