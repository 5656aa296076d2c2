package fees_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	overrideAddress  = "0x1983987AbC9837fbabc0982347ad828b7a2bc0e4"
	limitOnlyAddress = "0x2983987abc9837fbabc0982347ad828b7a2bc0e4"
	unknownAddress   = "0x9999999999999999999999999999999999999999"
)

func referencePrices() *fees.GasPriceEntry {
	return &fees.GasPriceEntry{
		LowFee:                "1",
		StandardFeeLow:        "2",
		StandardFeeLowAmount:  "1000",
		StandardFeeHigh:       "10",
		StandardFeeHighAmount: "100000",
		HighFee:               "20",
	}
}

func mustSchedule(entries map[string]fees.FeeScheduleEntry) fees.NetworkFeeSchedule {
	schedule, err := fees.NewNetworkFeeSchedule(entries)
	if err != nil {
		panic(err)
	}
	return schedule
}

func testSchedule() fees.NetworkFeeSchedule {
	return mustSchedule(map[string]fees.FeeScheduleEntry{
		fees.DefaultScheduleKey: {
			GasLimit: fees.GasLimitEntry{RegularTransaction: "21000", TokenTransaction: "200000"},
			GasPrice: referencePrices(),
		},
		overrideAddress: {
			GasLimit: fees.GasLimitEntry{RegularTransaction: "21001", TokenTransaction: "37123"},
			GasPrice: &fees.GasPriceEntry{
				LowFee:                "1000000011",
				StandardFeeLow:        "40000000011",
				StandardFeeLowAmount:  "200000000000000000",
				StandardFeeHigh:       "300000000011",
				StandardFeeHighAmount: "20000000000000000000",
				HighFee:               "40000000011",
			},
		},
		limitOnlyAddress: {
			GasLimit: fees.GasLimitEntry{RegularTransaction: "21002", TokenTransaction: "37124"},
		},
	})
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "abcdef0123", fees.NormalizeAddress("0xABCdef0123"))
	assert.Equal(t, "abcdef0123", fees.NormalizeAddress("0XABCDEF0123"))
	assert.Equal(t, "abcdef0123", fees.NormalizeAddress("  abcdef0123 "))
	assert.Equal(t, "", fees.NormalizeAddress("0x"))
}

func TestNetworkFeeSchedule_Resolve(t *testing.T) {
	schedule := testSchedule()

	t.Run("unknown address falls back to default", func(t *testing.T) {
		resolved, err := schedule.Resolve(unknownAddress)
		require.NoError(t, err)
		assert.Equal(t, "21000", resolved.GasLimit.RegularTransaction)
		assert.Equal(t, *referencePrices(), resolved.GasPrice)
	})

	t.Run("address override supplies limit and price", func(t *testing.T) {
		resolved, err := schedule.Resolve(overrideAddress)
		require.NoError(t, err)
		assert.Equal(t, "21001", resolved.GasLimit.RegularTransaction)
		assert.Equal(t, "1000000011", resolved.GasPrice.LowFee)
	})

	t.Run("lookup ignores case and prefix", func(t *testing.T) {
		resolved, err := schedule.Resolve("1983987abc9837fbabc0982347ad828b7a2bc0e4")
		require.NoError(t, err)
		assert.Equal(t, "37123", resolved.GasLimit.TokenTransaction)
	})

	t.Run("limit only override inherits default price", func(t *testing.T) {
		resolved, err := schedule.Resolve(limitOnlyAddress)
		require.NoError(t, err)
		assert.Equal(t, "21002", resolved.GasLimit.RegularTransaction)
		assert.Equal(t, *referencePrices(), resolved.GasPrice)
	})

	t.Run("missing default entry", func(t *testing.T) {
		partial := fees.NetworkFeeSchedule{}
		_, err := partial.Resolve(unknownAddress)
		assert.True(t, errors.Is(err, fees.ErrInvalidFeeSchedule))
		assert.True(t, errors.Is(partial.Validate(), fees.ErrInvalidFeeSchedule))
	})

	t.Run("no gas price anywhere", func(t *testing.T) {
		priceless := mustSchedule(map[string]fees.FeeScheduleEntry{
			fees.DefaultScheduleKey: {GasLimit: fees.GasLimitEntry{RegularTransaction: "21000", TokenTransaction: "200000"}},
			limitOnlyAddress:        {GasLimit: fees.GasLimitEntry{RegularTransaction: "21002", TokenTransaction: "37124"}},
		})
		_, err := priceless.Resolve(limitOnlyAddress)
		assert.True(t, errors.Is(err, fees.ErrInvalidGasPrice))
	})
}

func TestNetworkFeeSchedule_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"default": {
			"gasLimit": {"regularTransaction": "21000", "tokenTransaction": "200000"},
			"gasPrice": {
				"lowFee": "1",
				"standardFeeLow": "2",
				"standardFeeLowAmount": "1000",
				"standardFeeHigh": "10",
				"standardFeeHighAmount": "100000",
				"highFee": "20"
			}
		},
		"0xABCDEF0000000000000000000000000000000001": {
			"gasLimit": {"regularTransaction": "50000", "tokenTransaction": "90000"}
		}
	}`)

	var schedule fees.NetworkFeeSchedule
	require.NoError(t, json.Unmarshal(data, &schedule))
	require.NoError(t, schedule.Validate())

	entry, ok := schedule["abcdef0000000000000000000000000000000001"]
	require.True(t, ok, "address keys are normalized on decode")
	assert.Nil(t, entry.GasPrice)
	assert.Equal(t, "50000", entry.GasLimit.RegularTransaction)
	assert.Equal(t, "100000", schedule[fees.DefaultScheduleKey].GasPrice.StandardFeeHighAmount)
}

func TestNewNetworkFeeSchedule(t *testing.T) {
	limits := func(regular string) fees.FeeScheduleEntry {
		return fees.FeeScheduleEntry{GasLimit: fees.GasLimitEntry{RegularTransaction: regular, TokenTransaction: "90000"}}
	}

	tests := []struct {
		name      string
		entries   map[string]fees.FeeScheduleEntry
		wantErr   bool
		wantField string
		wantValue string
		wantKeys  []string
	}{
		{
			name: "address keys that normalize alike collide",
			entries: map[string]fees.FeeScheduleEntry{
				fees.DefaultScheduleKey: limits("21000"),
				"0xABCDEF":              limits("111"),
				"abcdef":                limits("222"),
			},
			wantErr:   true,
			wantField: "abcdef",
			wantValue: "0xABCDEF, abcdef",
		},
		{
			name: "default spelled two ways collides",
			entries: map[string]fees.FeeScheduleEntry{
				fees.DefaultScheduleKey: limits("21000"),
				" Default ":             limits("21001"),
			},
			wantErr:   true,
			wantField: fees.DefaultScheduleKey,
			wantValue: " Default , default",
		},
		{
			name: "upper case default is normalized",
			entries: map[string]fees.FeeScheduleEntry{
				"DEFAULT":  limits("21000"),
				"0xABCDEF": limits("111"),
			},
			wantKeys: []string{fees.DefaultScheduleKey, "abcdef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				schedule, err := fees.NewNetworkFeeSchedule(tt.entries)
				if tt.wantErr {
					require.Error(t, err)
					var feeErr *fees.Error
					require.True(t, errors.As(err, &feeErr))
					assert.Equal(t, fees.KindInvalidFeeSchedule, feeErr.Kind)
					assert.Equal(t, tt.wantField, feeErr.Field)
					assert.Equal(t, tt.wantValue, feeErr.Value)
					assert.Nil(t, schedule)
					continue
				}
				require.NoError(t, err)
				require.NoError(t, schedule.Validate())
				assert.Len(t, schedule, len(tt.wantKeys))
				for _, key := range tt.wantKeys {
					assert.Contains(t, schedule, key)
				}
			}
		})
	}
}

func TestNewNetworkFeeSchedule_CopiesGasPrices(t *testing.T) {
	prices := referencePrices()
	schedule := mustSchedule(map[string]fees.FeeScheduleEntry{
		fees.DefaultScheduleKey: {GasLimit: fees.GasLimitEntry{RegularTransaction: "21000"}, GasPrice: prices},
	})

	prices.LowFee = "999"
	assert.Equal(t, "1", schedule[fees.DefaultScheduleKey].GasPrice.LowFee)
}

func TestNetworkFeeSchedule_UnmarshalJSONRejectsCollisions(t *testing.T) {
	data := []byte(`{
		"default": {"gasLimit": {"regularTransaction": "21000", "tokenTransaction": "200000"}},
		"0xABCDEF": {"gasLimit": {"regularTransaction": "111", "tokenTransaction": "111"}},
		"abcdef": {"gasLimit": {"regularTransaction": "222", "tokenTransaction": "222"}}
	}`)

	var schedule fees.NetworkFeeSchedule
	err := json.Unmarshal(data, &schedule)
	assert.True(t, errors.Is(err, fees.ErrInvalidFeeSchedule), "got %v", err)
}
