package search

type SearchRequest struct {
	Address  string `json:"address"`
	Guests   int    `json:"guests"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

type SearchResult struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	MaxGuests     int     `json:"max_guests"`
	PricePerNight float64 `json:"price_per_night"`
}
