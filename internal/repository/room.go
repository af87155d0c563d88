package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// RoomRepository читает справочник номеров. Сами номера и отели ведёт
// внешний сервис, здесь только чтение.
type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// GetByIDs возвращает найденные номера по id. Отсутствующие id в карту
// не попадают, решение об ошибке принимает вызывающий.
func (r *RoomRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Room, error) {
	query := `SELECT r.id, r.hotel_id, r.name, h.name,
			         r.price, r.discount_percentage, r.available, r.max_occupancy
			  FROM rooms r
			  JOIN hotels h ON h.id = r.hotel_id
			  WHERE r.id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	defer rows.Close()

	res := make(map[string]*domain.Room, len(ids))
	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(
			&room.ID, &room.HotelID, &room.Name, &room.HotelName,
			&room.Price, &room.DiscountPercentage, &room.Available, &room.MaxOccupancy,
		); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res[room.ID] = &room
	}

	return res, rows.Err()
}
