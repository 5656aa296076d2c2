package requests

import (
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/ethereum/go-ethereum/common"
)

// SpendTargetRequest represents one recipient of an estimate request
type SpendTargetRequest struct {
	DestinationAddress string `json:"destination_address"`
	NativeAmount       string `json:"native_amount"`
}

// CustomFeeRequest carries caller-chosen gas values for the custom fee tier
type CustomFeeRequest struct {
	GasLimit string `json:"gas_limit"`
	GasPrice string `json:"gas_price"`
}

// EstimateFeeRequest represents the request body for estimating a fee
type EstimateFeeRequest struct {
	SpendTargets []SpendTargetRequest `json:"spend_targets"`
	CurrencyCode string               `json:"currency_code,omitempty"`
	FeeTier      string               `json:"fee_tier,omitempty"`
	CustomFee    *CustomFeeRequest    `json:"custom_fee,omitempty"`
}

// Validate checks that every destination is a hex account address. Amounts
// and tiers are left to the fee calculation.
func (r EstimateFeeRequest) Validate() error {
	for i, target := range r.SpendTargets {
		address := strings.TrimSpace(target.DestinationAddress)
		if !common.IsHexAddress(address) {
			return &fees.Error{
				Kind:  fees.KindInvalidSpendInfo,
				Field: fmt.Sprintf("spend_targets[%d].destination_address", i),
				Value: target.DestinationAddress,
			}
		}
	}
	return nil
}

// ToSpendRequest converts the request body into a fee calculation request
func (r EstimateFeeRequest) ToSpendRequest() fees.SpendRequest {
	req := fees.SpendRequest{
		SpendTargets: make([]fees.SpendTarget, 0, len(r.SpendTargets)),
		CurrencyCode: strings.TrimSpace(r.CurrencyCode),
		FeeTier:      fees.FeeTier(strings.ToLower(strings.TrimSpace(r.FeeTier))),
	}
	for _, target := range r.SpendTargets {
		req.SpendTargets = append(req.SpendTargets, fees.SpendTarget{
			DestinationAddress: strings.TrimSpace(target.DestinationAddress),
			NativeAmount:       strings.TrimSpace(target.NativeAmount),
		})
	}
	if r.CustomFee != nil {
		req.CustomFee = &fees.CustomFee{
			GasLimit: strings.TrimSpace(r.CustomFee.GasLimit),
			GasPrice: strings.TrimSpace(r.CustomFee.GasPrice),
		}
	}
	return req
}
