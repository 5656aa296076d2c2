package responses

import "github.com/cyphera/cyphera-fees/pkg/fees"

// FeeQuote is the result of a fee estimate. Gas values and TotalFee are in the
// smallest currency unit; TotalFeeDecimal is TotalFee in whole base units.
type FeeQuote struct {
	Network          string `json:"network"`
	BaseCurrencyCode string `json:"base_currency_code"`
	CurrencyCode     string `json:"currency_code"`
	FeeTier          string `json:"fee_tier"`
	GasLimit         string `json:"gas_limit"`
	GasPrice         string `json:"gas_price"`
	TotalFee         string `json:"total_fee"`
	TotalFeeDecimal  string `json:"total_fee_decimal"`
	Decimals         int32  `json:"decimals"`
}

// FeeEstimateResponse represents the standardized API response for a fee estimate
type FeeEstimateResponse struct {
	Object string `json:"object"`
	FeeQuote
}

// NetworkResponse represents a configured network
type NetworkResponse struct {
	Object           string `json:"object"`
	Name             string `json:"name"`
	BaseCurrencyCode string `json:"base_currency_code"`
	Decimals         int32  `json:"decimals"`
}

// FeeScheduleResponse represents the current schedule snapshot of a network
type FeeScheduleResponse struct {
	Object           string                  `json:"object"`
	Network          string                  `json:"network"`
	BaseCurrencyCode string                  `json:"base_currency_code"`
	Decimals         int32                   `json:"decimals"`
	UpdatedAt        int64                   `json:"updated_at"`
	Fees             fees.NetworkFeeSchedule `json:"fees"`
}
