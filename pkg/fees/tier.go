package fees

// customFees returns the caller's custom fee when the request selects the
// custom tier and both values are positive integers.
func customFees(tier FeeTier, custom *CustomFee) (CalcedFees, bool) {
	if tier != TierCustom || custom == nil {
		return CalcedFees{}, false
	}
	if !IsPositive(custom.GasLimit) || !IsPositive(custom.GasPrice) {
		return CalcedFees{}, false
	}
	return CalcedFees{GasLimit: custom.GasLimit, GasPrice: custom.GasPrice}, true
}

// SelectGasPrice returns the gas price for tier from entry. A custom tier that
// reaches this point had no usable custom fee and is rejected like any other
// unknown tier. A selected price of zero is InvalidGasPrice.
func SelectGasPrice(tier FeeTier, scaledAmount string, entry GasPriceEntry) (string, error) {
	var (
		price string
		err   error
	)
	switch tier {
	case TierLow:
		price, err = entry.price("lowFee", entry.LowFee)
	case TierStandard:
		price, err = InterpolateStandard(scaledAmount, entry)
	case TierHigh:
		price, err = entry.price("highFee", entry.HighFee)
	default:
		return "", newError(KindInvalidFeeOption, "feeTier", string(tier))
	}
	if err != nil {
		return "", err
	}
	if !IsPositive(price) {
		return "", newError(KindInvalidGasPrice, "gasPrice", price)
	}
	return price, nil
}

func (e GasPriceEntry) price(name, value string) (string, error) {
	if _, err := e.field(name, value); err != nil {
		return "", err
	}
	return value, nil
}
