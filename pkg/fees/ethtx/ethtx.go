// Package ethtx copies calculated fees into go-ethereum transaction data
// before signing.
package ethtx

import (
	"math/big"

	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// ErrInvalidRecipient is returned when a recipient is not a hex address
var ErrInvalidRecipient = errors.New("invalid recipient address")

// GasValues parses calculated fees into the gas limit and price types used by
// go-ethereum.
func GasValues(calced fees.CalcedFees) (uint64, *big.Int, error) {
	limit, err := fees.ParseAmount(calced.GasLimit)
	if err != nil || limit.Sign() <= 0 || !limit.IsUint64() {
		return 0, nil, errors.Errorf("gas limit %q does not fit a transaction", calced.GasLimit)
	}
	price, err := fees.ParseAmount(calced.GasPrice)
	if err != nil || price.Sign() <= 0 {
		return 0, nil, errors.Errorf("gas price %q is not a positive integer", calced.GasPrice)
	}
	return limit.Uint64(), price, nil
}

// ApplyLegacy sets Gas and GasPrice on a legacy transaction
func ApplyLegacy(calced fees.CalcedFees, tx *types.LegacyTx) error {
	gas, price, err := GasValues(calced)
	if err != nil {
		return err
	}
	tx.Gas = gas
	tx.GasPrice = price
	return nil
}

// ApplyDynamic sets Gas and GasFeeCap on an EIP-1559 transaction. The tip cap
// is lowered to the fee cap when it is missing or higher.
func ApplyDynamic(calced fees.CalcedFees, tx *types.DynamicFeeTx) error {
	gas, price, err := GasValues(calced)
	if err != nil {
		return err
	}
	tx.Gas = gas
	tx.GasFeeCap = price
	if tx.GasTipCap == nil || tx.GasTipCap.Cmp(price) > 0 {
		tx.GasTipCap = new(big.Int).Set(price)
	}
	return nil
}

// NewLegacyTransaction builds an unsigned legacy transaction paying value to
// the first spend target with the calculated fees.
func NewLegacyTransaction(nonce uint64, target fees.SpendTarget, data []byte, calced fees.CalcedFees) (*types.Transaction, error) {
	if !common.IsHexAddress(target.DestinationAddress) {
		return nil, errors.Wrapf(ErrInvalidRecipient, "%q", target.DestinationAddress)
	}
	value, err := fees.ParseAmount(target.NativeAmount)
	if err != nil {
		return nil, errors.Wrap(err, "parse native amount")
	}

	to := common.HexToAddress(target.DestinationAddress)
	inner := &types.LegacyTx{
		Nonce: nonce,
		To:    &to,
		Value: value,
		Data:  data,
	}
	if err := ApplyLegacy(calced, inner); err != nil {
		return nil, err
	}
	return types.NewTx(inner), nil
}
