package fees

// FeeTier is the fee aggressiveness requested by the caller
type FeeTier string

const (
	TierLow      FeeTier = "low"
	TierStandard FeeTier = "standard"
	TierHigh     FeeTier = "high"
	TierCustom   FeeTier = "custom"
)

// DefaultBaseCurrencyCode is used when Settings.BaseCurrencyCode is empty
const DefaultBaseCurrencyCode = "ETH"

// SpendTarget is one recipient of a spend
type SpendTarget struct {
	DestinationAddress string `json:"destinationAddress"`
	NativeAmount       string `json:"nativeAmount"`
}

// CustomFee carries caller-chosen gas values for the custom tier
type CustomFee struct {
	GasLimit string `json:"gasLimit"`
	GasPrice string `json:"gasPrice"`
}

// SpendRequest describes what the user wants to send. Only the first spend
// target takes part in fee selection.
type SpendRequest struct {
	SpendTargets []SpendTarget `json:"spendTargets"`
	CurrencyCode string        `json:"currencyCode"`
	FeeTier      FeeTier       `json:"feeTier"`
	CustomFee    *CustomFee    `json:"customFee,omitempty"`
}

// CalcedFees is the gas limit and gas price chosen for a spend
type CalcedFees struct {
	GasLimit string `json:"gasLimit"`
	GasPrice string `json:"gasPrice"`
}

// Settings is the per-network configuration for a calculation
type Settings struct {
	// BaseCurrencyCode is the chain's native asset. Spends in any other
	// currency code are treated as token transfers.
	BaseCurrencyCode string `json:"baseCurrencyCode"`
}

func (s Settings) baseCurrencyCode() string {
	if s.BaseCurrencyCode == "" {
		return DefaultBaseCurrencyCode
	}
	return s.BaseCurrencyCode
}
