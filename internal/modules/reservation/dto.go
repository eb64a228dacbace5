package reservation

import (
	"staybook/internal/domain"
	"staybook/internal/repository"
)

type CreateReservationRequest struct {
	AccommodationID int64  `json:"aid" binding:"required"`
	DateFrom        string `json:"date_from" binding:"required"`
	DateTo          string `json:"date_to" binding:"required"`
}

type ReservationResponse struct {
	ID              int64  `json:"rid"`
	AccommodationID int64  `json:"aid"`
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
}

func toReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		AccommodationID: r.AccommodationID,
		DateFrom:        r.DateFrom.Format(domain.DateFormat),
		DateTo:          r.DateTo.Format(domain.DateFormat),
	}
}

type MyReservationItem struct {
	ID                int64  `json:"rid"`
	AccommodationID   int64  `json:"aid"`
	AccommodationName string `json:"name"`
	City              string `json:"city"`
	Country           string `json:"country"`
	DateFrom          string `json:"date_from"`
	DateTo            string `json:"date_to"`
}

func toMyReservationItems(rows []repository.UserReservationRow) []MyReservationItem {
	items := make([]MyReservationItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, MyReservationItem{
			ID:                row.ID,
			AccommodationID:   row.AccommodationID,
			AccommodationName: row.Name,
			City:              row.City,
			Country:           row.Country,
			DateFrom:          row.DateFrom.Format(domain.DateFormat),
			DateTo:            row.DateTo.Format(domain.DateFormat),
		})
	}
	return items
}

type UpcomingItem struct {
	AccommodationID int64  `json:"aid"`
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
}
