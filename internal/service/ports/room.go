package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomRepo interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Room, error)
}

// RoomLocker сериализует создание броней по номерам. Ключи блокируются
// в отсортированном порядке, unlock снимает все сразу.
type RoomLocker interface {
	Lock(ctx context.Context, keys []string) (unlock func(), err error)
}
