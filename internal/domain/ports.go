package domain

import "context"

type FeedClient interface {
	// GetTours fetches the current catalog. An empty or malformed feed
	// body yields an empty slice, not an error.
	GetTours(ctx context.Context) ([]Tour, error)
	// TriggerRefresh asks the upstream aggregator to re-pull operator
	// data before the next GetTours. Fire-and-forget.
	TriggerRefresh(ctx context.Context) error
}

type BookingClient interface {
	Submit(ctx context.Context, req BookingRequest) (BookingResult, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Notifier delivers messages to the agency's messaging channel.
type Notifier interface {
	NotifyHotDeal(ctx context.Context, t Tour) error
	NotifyBooking(ctx context.Context, req BookingRequest, res BookingResult) error
}
