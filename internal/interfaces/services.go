//go:generate mockgen -source=services.go -destination=../mocks/services.go -package=mocks

package interfaces

import (
	"context"

	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/types/api/params"
	"github.com/cyphera/cyphera-fees/internal/types/api/responses"
)

// ScheduleProvider hands out the current fee schedule snapshot per network
type ScheduleProvider interface {
	Snapshot(ctx context.Context, network string) (*schedule.Snapshot, error)
	Networks(ctx context.Context) ([]schedule.Network, error)
}

// FeeService handles fee estimation operations
type FeeService interface {
	EstimateFee(ctx context.Context, params params.EstimateFeeParams) (*responses.FeeQuote, error)
	GetSchedule(ctx context.Context, network string) (*schedule.Snapshot, error)
	ListNetworks(ctx context.Context) ([]schedule.Network, error)
}
