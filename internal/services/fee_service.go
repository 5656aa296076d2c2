package services

import (
	"context"

	"github.com/cyphera/cyphera-fees/internal/interfaces"
	"github.com/cyphera/cyphera-fees/internal/logger"
	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/types/api/params"
	"github.com/cyphera/cyphera-fees/internal/types/api/responses"
	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FeeService estimates spend fees against the schedule snapshots of a provider
type FeeService struct {
	provider interfaces.ScheduleProvider
	logger   *logger.StructuredLogger
}

// NewFeeService creates a new fee service
func NewFeeService(provider interfaces.ScheduleProvider) *FeeService {
	return &FeeService{
		provider: provider,
		logger:   logger.NewStructuredLogger(logger.ComponentFees),
	}
}

// EstimateFee selects the gas limit and gas price for a spend on the given
// network and prices the resulting transaction
func (s *FeeService) EstimateFee(ctx context.Context, params params.EstimateFeeParams) (*responses.FeeQuote, error) {
	log := s.logger.WithCorrelationID(params.CorrelationID).
		WithFields(zap.String("network", params.Network))

	snapshot, err := s.provider.Snapshot(ctx, params.Network)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get fee schedule")
	}

	settings := snapshot.Network.Settings()
	req := params.Request

	var calced fees.CalcedFees
	err = log.LogOperation("calc_mining_fee", func() error {
		var calcErr error
		calced, calcErr = fees.CalcMiningFee(&req, snapshot.Fees, settings)
		return calcErr
	})
	if err != nil {
		return nil, err
	}

	total, err := fees.Mul(calced.GasLimit, calced.GasPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute total fee")
	}
	totalDecimal, err := toWholeUnits(total, snapshot.Network.Decimals)
	if err != nil {
		return nil, err
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = settings.BaseCurrencyCode
	}
	tier := req.FeeTier
	if tier == "" {
		tier = fees.TierStandard
	}

	quote := &responses.FeeQuote{
		Network:          snapshot.Network.Name,
		BaseCurrencyCode: settings.BaseCurrencyCode,
		CurrencyCode:     currencyCode,
		FeeTier:          string(tier),
		GasLimit:         calced.GasLimit,
		GasPrice:         calced.GasPrice,
		TotalFee:         total,
		TotalFeeDecimal:  totalDecimal,
		Decimals:         snapshot.Network.Decimals,
	}

	log.Info("Estimated fee",
		zap.String("fee_tier", quote.FeeTier),
		zap.String("currency_code", quote.CurrencyCode),
		zap.String("gas_limit", quote.GasLimit),
		zap.String("gas_price", quote.GasPrice),
		zap.String("total_fee", quote.TotalFee),
	)
	return quote, nil
}

// GetSchedule returns the current schedule snapshot of a network
func (s *FeeService) GetSchedule(ctx context.Context, network string) (*schedule.Snapshot, error) {
	snapshot, err := s.provider.Snapshot(ctx, network)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get fee schedule")
	}
	return snapshot, nil
}

// ListNetworks returns every network with a schedule
func (s *FeeService) ListNetworks(ctx context.Context) ([]schedule.Network, error) {
	networks, err := s.provider.Networks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list networks")
	}
	return networks, nil
}

// toWholeUnits shifts an amount in the smallest unit by decimals places
func toWholeUnits(amount string, decimals int32) (string, error) {
	value, err := fees.ParseAmount(amount)
	if err != nil {
		return "", errors.Wrapf(err, "invalid amount %q", amount)
	}
	return decimal.NewFromBigInt(value, -decimals).String(), nil
}
