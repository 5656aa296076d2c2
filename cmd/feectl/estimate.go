package main

import (
	"strings"

	"github.com/cyphera/cyphera-fees/internal/types/api/params"
	"github.com/cyphera/cyphera-fees/internal/types/api/responses"
	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/cyphera/cyphera-fees/pkg/fees/ethtx"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	NetworkKey        = "network"
	ToKey             = "to"
	AmountKey         = "amount"
	CurrencyKey       = "currency"
	TierKey           = "tier"
	CustomGasLimitKey = "custom-gas-limit"
	CustomGasPriceKey = "custom-gas-price"
	LegacyTxKey       = "legacy-tx"
	NonceKey          = "nonce"
)

type EstimateConfig struct {
	Network  string
	Request  fees.SpendRequest
	LegacyTx bool
	Nonce    uint64
}

type estimateOutput struct {
	Quote       *responses.FeeQuote `json:"quote"`
	Transaction *types.Transaction  `json:"transaction,omitempty"`
}

func estimateCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "estimate",
		Short: "Estimates the gas limit and gas price of a spend",
		Args:  cobra.NoArgs,
		RunE:  estimateFunc,
	}
	AddEstimateFlags(c.Flags())
	return c
}

func AddEstimateFlags(flags *pflag.FlagSet) {
	flags.String(NetworkKey, "ethereum", "Network whose schedule is used")
	flags.String(ToKey, "", "Destination address (required)")
	flags.String(AmountKey, "", "Amount in the smallest currency unit (required)")
	flags.String(CurrencyKey, "", "Currency code; empty means the network's base currency")
	flags.String(TierKey, string(fees.TierStandard), "Fee tier: low, standard, high or custom")
	flags.String(CustomGasLimitKey, "", "Gas limit for the custom tier")
	flags.String(CustomGasPriceKey, "", "Gas price for the custom tier")
	flags.Bool(LegacyTxKey, false, "Also print the unsigned legacy transaction of a base currency spend")
	flags.Uint64(NonceKey, 0, "Nonce of the legacy transaction")
}

func ParseEstimateFlags(flags *pflag.FlagSet) (*EstimateConfig, error) {
	get := func(key string) (string, error) {
		value, err := flags.GetString(key)
		return strings.TrimSpace(value), err
	}

	network, err := get(NetworkKey)
	if err != nil {
		return nil, err
	}
	to, err := get(ToKey)
	if err != nil {
		return nil, err
	}
	amount, err := get(AmountKey)
	if err != nil {
		return nil, err
	}
	if to == "" || amount == "" {
		return nil, errors.Errorf("--%s and --%s are required", ToKey, AmountKey)
	}
	currency, err := get(CurrencyKey)
	if err != nil {
		return nil, err
	}
	tier, err := get(TierKey)
	if err != nil {
		return nil, err
	}
	customLimit, err := get(CustomGasLimitKey)
	if err != nil {
		return nil, err
	}
	customPrice, err := get(CustomGasPriceKey)
	if err != nil {
		return nil, err
	}
	legacyTx, err := flags.GetBool(LegacyTxKey)
	if err != nil {
		return nil, err
	}
	nonce, err := flags.GetUint64(NonceKey)
	if err != nil {
		return nil, err
	}

	config := &EstimateConfig{
		Network: network,
		Request: fees.SpendRequest{
			SpendTargets: []fees.SpendTarget{{DestinationAddress: to, NativeAmount: amount}},
			CurrencyCode: currency,
			FeeTier:      fees.FeeTier(strings.ToLower(tier)),
		},
		LegacyTx: legacyTx,
		Nonce:    nonce,
	}
	if customLimit != "" || customPrice != "" {
		config.Request.CustomFee = &fees.CustomFee{GasLimit: customLimit, GasPrice: customPrice}
	}
	return config, nil
}

func estimateFunc(c *cobra.Command, _ []string) error {
	config, err := ParseEstimateFlags(c.Flags())
	if err != nil {
		return err
	}
	service, err := loadService(c.Flags())
	if err != nil {
		return err
	}

	quote, err := service.EstimateFee(c.Context(), params.EstimateFeeParams{
		Network: config.Network,
		Request: config.Request,
	})
	if err != nil {
		return err
	}

	output := estimateOutput{Quote: quote}
	if config.LegacyTx {
		if quote.CurrencyCode != quote.BaseCurrencyCode {
			return errors.Errorf("--%s only supports %s spends", LegacyTxKey, quote.BaseCurrencyCode)
		}
		output.Transaction, err = ethtx.NewLegacyTransaction(
			config.Nonce,
			config.Request.SpendTargets[0],
			nil,
			fees.CalcedFees{GasLimit: quote.GasLimit, GasPrice: quote.GasPrice},
		)
		if err != nil {
			return err
		}
	}
	return writeJSON(c.OutOrStdout(), output)
}
