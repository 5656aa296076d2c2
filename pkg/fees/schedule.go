package fees

import (
	"encoding/json"
	"sort"
	"strings"
)

// DefaultScheduleKey is the mandatory fallback entry of a NetworkFeeSchedule
const DefaultScheduleKey = "default"

// GasPriceEntry holds the per-tier gas prices of a schedule entry. The standard
// tier is interpolated between StandardFeeLow at StandardFeeLowAmount and
// StandardFeeHigh at StandardFeeHighAmount. The low thresholds are expected to
// be at most the high ones; this is not enforced.
type GasPriceEntry struct {
	LowFee                string `json:"lowFee"`
	StandardFeeLow        string `json:"standardFeeLow"`
	StandardFeeLowAmount  string `json:"standardFeeLowAmount"`
	StandardFeeHigh       string `json:"standardFeeHigh"`
	StandardFeeHighAmount string `json:"standardFeeHighAmount"`
	HighFee               string `json:"highFee"`
}

// GasLimitEntry holds gas limits for plain transfers and token contract calls
type GasLimitEntry struct {
	RegularTransaction string `json:"regularTransaction"`
	TokenTransaction   string `json:"tokenTransaction"`
}

// FeeScheduleEntry is the fee guidance for one destination. A nil GasPrice
// inherits the default entry's prices.
type FeeScheduleEntry struct {
	GasLimit GasLimitEntry  `json:"gasLimit"`
	GasPrice *GasPriceEntry `json:"gasPrice,omitempty"`
}

// NetworkFeeSchedule maps normalized destination addresses, plus
// DefaultScheduleKey, to fee guidance.
type NetworkFeeSchedule map[string]FeeScheduleEntry

// NewNetworkFeeSchedule copies entries into a schedule with normalized keys.
// Gas prices are copied too, so the result shares no memory with entries.
// Two keys that normalize to the same key are an InvalidFeeSchedule error
// naming both.
func NewNetworkFeeSchedule(entries map[string]FeeScheduleEntry) (NetworkFeeSchedule, error) {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	schedule := make(NetworkFeeSchedule, len(entries))
	sources := make(map[string]string, len(entries))
	for _, key := range keys {
		normalized := normalizeKey(key)
		if previous, ok := sources[normalized]; ok {
			return nil, newError(KindInvalidFeeSchedule, normalized, previous+", "+key)
		}
		sources[normalized] = key
		schedule[normalized] = entries[key].clone()
	}
	return schedule, nil
}

// UnmarshalJSON decodes a schedule and normalizes its address keys
func (s *NetworkFeeSchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]FeeScheduleEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	schedule, err := NewNetworkFeeSchedule(raw)
	if err != nil {
		return err
	}
	*s = schedule
	return nil
}

func (e FeeScheduleEntry) clone() FeeScheduleEntry {
	if e.GasPrice != nil {
		price := *e.GasPrice
		e.GasPrice = &price
	}
	return e
}

// Validate checks that the default entry is present
func (s NetworkFeeSchedule) Validate() error {
	if _, ok := s[DefaultScheduleKey]; !ok {
		return newError(KindInvalidFeeSchedule, DefaultScheduleKey, "")
	}
	return nil
}

// NormalizeAddress canonicalizes an address for schedule lookup: surrounding
// whitespace is dropped, letters are lower-cased and a leading 0x is removed.
func NormalizeAddress(address string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(address)), "0x")
}

func normalizeKey(key string) string {
	if key == DefaultScheduleKey {
		return key
	}
	return NormalizeAddress(key)
}

// ResolvedSchedule is the pair of sub-entries that apply to one destination
type ResolvedSchedule struct {
	GasLimit GasLimitEntry
	GasPrice GasPriceEntry
}

// Resolve picks the schedule entries for destinationAddress. The gas limit
// comes from the address entry if there is one, otherwise from the default
// entry. The gas price comes from the same entry unless it has none, in which
// case the default entry's price is used.
func (s NetworkFeeSchedule) Resolve(destinationAddress string) (ResolvedSchedule, error) {
	defaultEntry, hasDefault := s[DefaultScheduleKey]

	limitEntry, found := s[NormalizeAddress(destinationAddress)]
	if !found {
		if !hasDefault {
			return ResolvedSchedule{}, newError(KindInvalidFeeSchedule, DefaultScheduleKey, "")
		}
		limitEntry = defaultEntry
	}

	priceEntry := limitEntry.GasPrice
	if priceEntry == nil && hasDefault {
		priceEntry = defaultEntry.GasPrice
	}
	if priceEntry == nil {
		return ResolvedSchedule{}, newError(KindInvalidGasPrice, "gasPrice", "")
	}

	return ResolvedSchedule{
		GasLimit: limitEntry.GasLimit,
		GasPrice: *priceEntry,
	}, nil
}
