package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cyphera/cyphera-fees/internal/logger"
	"github.com/cyphera/cyphera-fees/internal/mocks"
	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/services"
	"github.com/cyphera/cyphera-fees/internal/types/api/params"
	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

const destination = "0x1111111111111111111111111111111111111111"

func ethereumSnapshot() *schedule.Snapshot {
	return &schedule.Snapshot{
		Network: schedule.Network{Name: "ethereum", BaseCurrencyCode: "ETH", Decimals: 18},
		Fees: fees.NetworkFeeSchedule{
			fees.DefaultScheduleKey: {
				GasLimit: fees.GasLimitEntry{RegularTransaction: "21000", TokenTransaction: "200000"},
				GasPrice: &fees.GasPriceEntry{
					LowFee:                "1",
					StandardFeeLow:        "2",
					StandardFeeLowAmount:  "1000",
					StandardFeeHigh:       "10",
					StandardFeeHighAmount: "100000",
					HighFee:               "20",
				},
			},
		},
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func spend(amount, currency string, tier fees.FeeTier) fees.SpendRequest {
	return fees.SpendRequest{
		SpendTargets: []fees.SpendTarget{{DestinationAddress: destination, NativeAmount: amount}},
		CurrencyCode: currency,
		FeeTier:      tier,
	}
}

func TestFeeService_EstimateFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockScheduleProvider(ctrl)
	service := services.NewFeeService(mockProvider)
	ctx := context.Background()

	tests := []struct {
		name         string
		request      fees.SpendRequest
		wantTier     string
		wantCurrency string
		wantLimit    string
		wantPrice    string
		wantTotal    string
		wantDecimal  string
	}{
		{
			name:         "standard tier interpolates",
			request:      spend("50500", "ETH", fees.TierStandard),
			wantTier:     "standard",
			wantCurrency: "ETH",
			wantLimit:    "21000",
			wantPrice:    "6",
			wantTotal:    "126000",
			wantDecimal:  "0.000000000000126",
		},
		{
			name:         "empty tier and currency use defaults",
			request:      spend("500", "", ""),
			wantTier:     "standard",
			wantCurrency: "ETH",
			wantLimit:    "21000",
			wantPrice:    "2",
			wantTotal:    "42000",
			wantDecimal:  "0.000000000000042",
		},
		{
			name:         "token spend uses token limit and scaled amount",
			request:      spend("505000", "USDT", fees.TierStandard),
			wantTier:     "standard",
			wantCurrency: "USDT",
			wantLimit:    "200000",
			wantPrice:    "6",
			wantTotal:    "1200000",
			wantDecimal:  "0.0000000000012",
		},
		{
			name:         "high tier",
			request:      spend("1", "ETH", fees.TierHigh),
			wantTier:     "high",
			wantCurrency: "ETH",
			wantLimit:    "21000",
			wantPrice:    "20",
			wantTotal:    "420000",
			wantDecimal:  "0.00000000000042",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider.EXPECT().Snapshot(ctx, "ethereum").Return(ethereumSnapshot(), nil)

			quote, err := service.EstimateFee(ctx, params.EstimateFeeParams{
				Network:       "ethereum",
				Request:       tt.request,
				CorrelationID: "corr-1",
			})
			require.NoError(t, err)

			assert.Equal(t, "ethereum", quote.Network)
			assert.Equal(t, "ETH", quote.BaseCurrencyCode)
			assert.Equal(t, tt.wantCurrency, quote.CurrencyCode)
			assert.Equal(t, tt.wantTier, quote.FeeTier)
			assert.Equal(t, tt.wantLimit, quote.GasLimit)
			assert.Equal(t, tt.wantPrice, quote.GasPrice)
			assert.Equal(t, tt.wantTotal, quote.TotalFee)
			assert.Equal(t, tt.wantDecimal, quote.TotalFeeDecimal)
			assert.Equal(t, int32(18), quote.Decimals)
		})
	}
}

func TestFeeService_EstimateFeeCustomTier(t *testing.T) {
	mockProvider := mocks.NewMockScheduleProviderForTest(t)
	service := services.NewFeeService(mockProvider)
	ctx := context.Background()

	snapshot := ethereumSnapshot()
	snapshot.Fees = fees.NetworkFeeSchedule{}
	mockProvider.EXPECT().Snapshot(ctx, "ethereum").Return(snapshot, nil)

	req := spend("1000", "ETH", fees.TierCustom)
	req.CustomFee = &fees.CustomFee{GasLimit: "30000", GasPrice: "7"}

	quote, err := service.EstimateFee(ctx, params.EstimateFeeParams{Network: "ethereum", Request: req})
	require.NoError(t, err)
	assert.Equal(t, "30000", quote.GasLimit)
	assert.Equal(t, "7", quote.GasPrice)
	assert.Equal(t, "210000", quote.TotalFee)
	assert.Equal(t, "custom", quote.FeeTier)
}

func TestFeeService_EstimateFeeErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(m *mocks.MockScheduleProvider)
		request    fees.SpendRequest
		wantErr    error
	}{
		{
			name: "unknown network",
			setupMocks: func(m *mocks.MockScheduleProvider) {
				m.EXPECT().Snapshot(ctx, "ethereum").
					Return(nil, errors.Wrap(schedule.ErrUnknownNetwork, "ethereum"))
			},
			request: spend("1000", "ETH", fees.TierStandard),
			wantErr: schedule.ErrUnknownNetwork,
		},
		{
			name: "unsupported tier",
			setupMocks: func(m *mocks.MockScheduleProvider) {
				m.EXPECT().Snapshot(ctx, "ethereum").Return(ethereumSnapshot(), nil)
			},
			request: spend("1000", "ETH", "urgent"),
			wantErr: fees.ErrInvalidFeeOption,
		},
		{
			name: "no spend targets",
			setupMocks: func(m *mocks.MockScheduleProvider) {
				m.EXPECT().Snapshot(ctx, "ethereum").Return(ethereumSnapshot(), nil)
			},
			request: fees.SpendRequest{FeeTier: fees.TierLow},
			wantErr: fees.ErrInvalidSpendInfo,
		},
		{
			name: "zero amount",
			setupMocks: func(m *mocks.MockScheduleProvider) {
				m.EXPECT().Snapshot(ctx, "ethereum").Return(ethereumSnapshot(), nil)
			},
			request: spend("0", "ETH", fees.TierLow),
			wantErr: fees.ErrInvalidNativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider := mocks.NewMockScheduleProviderForTest(t)
			tt.setupMocks(mockProvider)
			service := services.NewFeeService(mockProvider)

			quote, err := service.EstimateFee(ctx, params.EstimateFeeParams{Network: "ethereum", Request: tt.request})
			assert.Nil(t, quote)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestFeeService_GetScheduleAndListNetworks(t *testing.T) {
	mockProvider := mocks.NewMockScheduleProviderForTest(t)
	service := services.NewFeeService(mockProvider)
	ctx := context.Background()

	snapshot := ethereumSnapshot()
	mockProvider.EXPECT().Snapshot(ctx, "ethereum").Return(snapshot, nil)
	mockProvider.EXPECT().Snapshot(ctx, "solana").Return(nil, schedule.ErrUnknownNetwork)
	mockProvider.EXPECT().Networks(ctx).Return([]schedule.Network{snapshot.Network}, nil)

	got, err := service.GetSchedule(ctx, "ethereum")
	require.NoError(t, err)
	assert.Same(t, snapshot, got)

	_, err = service.GetSchedule(ctx, "solana")
	assert.True(t, errors.Is(err, schedule.ErrUnknownNetwork))
	assert.Contains(t, err.Error(), "failed to get fee schedule")

	networks, err := service.ListNetworks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schedule.Network{snapshot.Network}, networks)
}

func TestFeeService_ListNetworksError(t *testing.T) {
	mockProvider := mocks.NewMockScheduleProviderForTest(t)
	service := services.NewFeeService(mockProvider)

	mockProvider.EXPECT().Networks(gomock.Any()).Return(nil, context.Canceled)

	_, err := service.ListNetworks(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}
