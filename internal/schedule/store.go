package schedule

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cyphera/cyphera-fees/internal/constants"
	"github.com/cyphera/cyphera-fees/internal/logger"
	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrUnknownNetwork is returned for networks without a schedule snapshot
var ErrUnknownNetwork = errors.New("unknown network")

// Network describes the chain a schedule applies to
type Network struct {
	Name             string `json:"name"`
	BaseCurrencyCode string `json:"base_currency_code"`
	Decimals         int32  `json:"decimals"`
}

// Settings returns the calculation settings for the network
func (n Network) Settings() fees.Settings {
	return fees.Settings{BaseCurrencyCode: n.BaseCurrencyCode}
}

// Snapshot is the most recent fee schedule handed to the store for a network
type Snapshot struct {
	Network   Network                 `json:"network"`
	Fees      fees.NetworkFeeSchedule `json:"fees"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Store keeps one schedule snapshot per network. Put stores a deep copy of
// the schedule and snapshots are replaced whole, so readers may share them.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	logger    *zap.Logger
	now       func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		snapshots: make(map[string]*Snapshot),
		logger:    logger.With(zap.String("component", string(logger.ComponentSchedule))),
		now:       time.Now,
	}
}

// Put validates and stores a snapshot, replacing any previous one for the
// same network. Keys are normalized before the default entry is checked.
// Missing base currency and decimals are filled in.
func (s *Store) Put(network Network, schedule fees.NetworkFeeSchedule) (*Snapshot, error) {
	network.Name = strings.ToLower(strings.TrimSpace(network.Name))
	if network.Name == "" {
		return nil, errors.New("network name is required")
	}
	normalized, err := fees.NewNetworkFeeSchedule(schedule)
	if err != nil {
		return nil, errors.Wrapf(err, "schedule for %s", network.Name)
	}
	if err := normalized.Validate(); err != nil {
		return nil, errors.Wrapf(err, "schedule for %s", network.Name)
	}
	if network.BaseCurrencyCode == "" {
		code, ok := constants.BaseCurrencyForNetwork(network.Name)
		if !ok {
			code = fees.DefaultBaseCurrencyCode
		}
		network.BaseCurrencyCode = code
	}
	if network.Decimals <= 0 {
		network.Decimals = constants.DefaultDecimals
	}

	snapshot := &Snapshot{
		Network:   network,
		Fees:      normalized,
		UpdatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.snapshots[network.Name] = snapshot
	s.mu.Unlock()

	s.logger.Info("Stored fee schedule snapshot",
		zap.String("network", network.Name),
		zap.String("base_currency_code", network.BaseCurrencyCode),
		zap.Int("entries", len(snapshot.Fees)),
	)
	return snapshot, nil
}

// Snapshot returns the current snapshot for a network
func (s *Store) Snapshot(ctx context.Context, network string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snapshot, ok := s.snapshots[strings.ToLower(strings.TrimSpace(network))]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "%q", network)
	}
	return snapshot, nil
}

// Networks lists the stored networks in name order
func (s *Store) Networks(ctx context.Context) ([]Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	networks := make([]Network, 0, len(s.snapshots))
	for _, snapshot := range s.snapshots {
		networks = append(networks, snapshot.Network)
	}
	s.mu.RUnlock()

	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Name < networks[j].Name
	})
	return networks, nil
}
