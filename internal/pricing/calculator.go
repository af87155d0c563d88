// Package pricing computes itemised room prices. Everything here is pure:
// callers resolve rooms first and pass them in.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

const (
	DateLayout     = "2006-01-02"
	DefaultTaxRate = 0.10
)

// Round2 rounds v half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Nights is the number of started 24h periods between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func NightlyRate(room *domain.Room) float64 {
	return room.Price * (1 - room.DiscountPercentage/100)
}

// ItemTotal is the unrounded discounted price of one unit of room for the stay.
func ItemTotal(room *domain.Room, checkIn, checkOut time.Time) float64 {
	return NightlyRate(room) * float64(Nights(checkIn, checkOut))
}

// Quote builds the itemised breakdown for selections. Selections sharing
// room and dates collapse into one line whose quantity is the number of units.
// Subtotal is summed from unrounded item totals; rounding happens once per
// aggregate: tax = round(S*rate), total = round(S+tax).
func Quote(rooms map[string]*domain.Room, selections []domain.Selection, taxRate float64) (*domain.PriceQuote, error) {
	type line struct {
		quote domain.QuoteLine
		raw   float64
	}

	var (
		order []string
		lines = make(map[string]*line)
		sum   float64
	)

	for _, sel := range selections {
		room, ok := rooms[sel.RoomID]
		if !ok || room == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, sel.RoomID)
		}

		raw := ItemTotal(room, sel.CheckIn, sel.CheckOut)
		sum += raw

		key := lineKey(sel)
		l, ok := lines[key]
		if !ok {
			l = &line{quote: domain.QuoteLine{
				RoomID:             room.ID,
				RoomName:           room.Name,
				HotelName:          room.HotelName,
				CheckIn:            sel.CheckIn.Format(DateLayout),
				CheckOut:           sel.CheckOut.Format(DateLayout),
				Nights:             Nights(sel.CheckIn, sel.CheckOut),
				BasePrice:          room.Price,
				DiscountPercentage: room.DiscountPercentage,
				NightlyRate:        Round2(NightlyRate(room)),
			}}
			lines[key] = l
			order = append(order, key)
		}
		l.quote.Quantity++
		l.raw += raw
	}

	q := &domain.PriceQuote{Items: make([]domain.QuoteLine, 0, len(order))}
	for _, key := range order {
		l := lines[key]
		l.quote.ItemTotal = Round2(l.raw)
		q.Items = append(q.Items, l.quote)
	}

	q.Subtotal = Round2(sum)
	q.Tax = Round2(sum * taxRate)
	q.Total = Round2(sum + q.Tax)

	return q, nil
}

// BookingTotal is the tax-inclusive total persisted on a booking. Item totals
// are already rounded per item at this point.
func BookingTotal(itemTotals []float64, taxRate float64) float64 {
	var sum float64
	for _, t := range itemTotals {
		sum += t
	}
	return Round2(sum + sum*taxRate)
}

func lineKey(sel domain.Selection) string {
	return sel.RoomID + "|" + sel.CheckIn.Format(DateLayout) + "|" + sel.CheckOut.Format(DateLayout)
}
