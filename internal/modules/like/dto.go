package like

import "staybook/internal/repository"

type ToggleLikeRequest struct {
	AccommodationID int64 `json:"aid" binding:"required"`
}

type LikedItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	PricePerNight float64 `json:"price_per_night"`
}

func toLikedItems(rows []repository.LikedRow) []LikedItem {
	items := make([]LikedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, LikedItem{
			ID:            row.ID,
			Name:          row.Name,
			City:          row.City,
			Country:       row.Country,
			PricePerNight: row.PricePerNight,
		})
	}
	return items
}
