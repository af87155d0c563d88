package notification

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

// Multi fans a notification out to every sink in order.
type Multi []ports.Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(ctx, n)
		}
	}
}
