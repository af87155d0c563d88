package domain

// Room is a priced, countable room type owned by the room directory.
type Room struct {
	ID                 string  `json:"id"`
	HotelID            string  `json:"hotel_id"`
	Name               string  `json:"name"`
	HotelName          string  `json:"hotel_name"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Available          int     `json:"available"`
	MaxOccupancy       int     `json:"max_occupancy"`
}

// QuoteLine is one itemised line of a price quote.
type QuoteLine struct {
	RoomID             string  `json:"room_id"`
	RoomName           string  `json:"room_name"`
	HotelName          string  `json:"hotel_name"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	Nights             int     `json:"nights"`
	Quantity           int     `json:"quantity"`
	BasePrice          float64 `json:"base_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	NightlyRate        float64 `json:"nightly_rate"`
	ItemTotal          float64 `json:"item_total"`
}

type PriceQuote struct {
	Items    []QuoteLine `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`
}
