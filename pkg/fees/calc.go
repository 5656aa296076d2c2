// Package fees selects the gas limit and gas price for an account-based
// chain spend from a declarative network fee schedule.
//
// The calculation is a pure function of its inputs. Amounts are decimal
// integer strings in the smallest currency unit and all arithmetic is exact;
// the only division in the standard tier truncates toward zero.
package fees

// CalcMiningFee picks the gas limit and gas price for req.
//
// The request is validated first. A custom tier with a usable custom fee is
// returned as is without consulting schedule. Otherwise the schedule entry for
// the first destination is resolved, the amount is scaled for token spends,
// the gas price is chosen by tier and the gas limit by transaction kind.
func CalcMiningFee(req *SpendRequest, schedule NetworkFeeSchedule, settings Settings) (CalcedFees, error) {
	if err := ValidateRequest(req); err != nil {
		return CalcedFees{}, err
	}

	tier := req.FeeTier
	if tier == "" {
		tier = TierStandard
	}
	if fees, ok := customFees(tier, req.CustomFee); ok {
		return fees, nil
	}

	target := req.SpendTargets[0]
	resolved, err := schedule.Resolve(target.DestinationAddress)
	if err != nil {
		return CalcedFees{}, err
	}

	baseCode := settings.baseCurrencyCode()
	limitField := GasLimitField(req.CurrencyCode, baseCode)
	scaledAmount, err := ScaleForComparison(target.NativeAmount, req.CurrencyCode, baseCode)
	if err != nil {
		return CalcedFees{}, newError(KindInvalidNativeAmount, "spendTargets[0].nativeAmount", target.NativeAmount)
	}

	gasPrice, err := SelectGasPrice(tier, scaledAmount, resolved.GasPrice)
	if err != nil {
		return CalcedFees{}, err
	}

	gasLimit := resolved.GasLimit.Limit(limitField)
	if !IsPositive(gasLimit) {
		return CalcedFees{}, newError(KindInvalidGasLimit, "gasLimit."+limitField, gasLimit)
	}

	return CalcedFees{GasLimit: gasLimit, GasPrice: gasPrice}, nil
}
