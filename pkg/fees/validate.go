package fees

import "strings"

// ValidateRequest checks the structural preconditions of a spend request
func ValidateRequest(req *SpendRequest) error {
	if req == nil {
		return newError(KindInvalidSpendInfo, "spendRequest", "")
	}
	if len(req.SpendTargets) == 0 {
		return newError(KindInvalidSpendInfo, "spendTargets", "")
	}

	target := req.SpendTargets[0]
	if strings.TrimSpace(target.DestinationAddress) == "" {
		return newError(KindInvalidSpendInfo, "spendTargets[0].destinationAddress", "")
	}
	if !IsPositive(target.NativeAmount) {
		return newError(KindInvalidNativeAmount, "spendTargets[0].nativeAmount", target.NativeAmount)
	}
	return nil
}
