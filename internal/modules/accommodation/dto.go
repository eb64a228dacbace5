package accommodation

import "staybook/internal/repository"

type DetailsResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MaxGuests     int     `json:"max_guests"`
	PricePerNight float64 `json:"price_per_night"`
	Description   string  `json:"description"`
	ImageCount    int64   `json:"image_count"`
	IsLiked       bool    `json:"is_liked"`
	IsOwner       bool    `json:"is_owner"`
}

func toDetailsResponse(d *Details) DetailsResponse {
	a := d.Accommodation
	return DetailsResponse{
		ID:            a.ID,
		Name:          a.Name,
		City:          a.City,
		Country:       a.Country,
		Latitude:      a.Latitude,
		Longitude:     a.Longitude,
		MaxGuests:     a.MaxGuests,
		PricePerNight: a.PricePerNight,
		Description:   a.Description,
		ImageCount:    d.ImageCount,
		IsLiked:       d.IsLiked,
		IsOwner:       d.IsOwner,
	}
}

type MainScreenItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	IsLiked       bool    `json:"is_liked"`
}

func toMainScreenItems(rows []repository.MainScreenRow) []MainScreenItem {
	items := make([]MainScreenItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, MainScreenItem{
			ID:            row.ID,
			Name:          row.Name,
			PricePerNight: row.PricePerNight,
			City:          row.City,
			Country:       row.Country,
			IsLiked:       row.IsLiked,
		})
	}
	return items
}

// Coordinates are pointers so that 0 (equator, prime meridian) survives the
// required check; required on a plain float64 rejects the zero value.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}
