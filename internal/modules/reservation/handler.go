package reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/internal/domain"
	"staybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
	rg.DELETE("/reservations/:id", h.CancelReservation)
	rg.GET("/reservations/mine", h.MyReservations)
	rg.GET("/reservations/upcoming", h.UpcomingReservations)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	from, err := time.Parse(domain.DateFormat, req.DateFrom)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_from must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse(domain.DateFormat, req.DateTo)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_to must be YYYY-MM-DD")
		return
	}

	userID := c.GetInt64("user_id")
	r, err := h.service.Create(c.Request.Context(), req.AccommodationID, userID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation date range")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", "Accommodation is already reserved in this date range")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": toReservationResponse(r)})
}

func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation id")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.service.Cancel(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel reservation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) MyReservations(c *gin.Context) {
	userID := c.GetInt64("user_id")
	rows, err := h.service.MyReservations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": toMyReservationItems(rows)})
}

func (h *Handler) UpcomingReservations(c *gin.Context) {
	userID := c.GetInt64("user_id")
	list, err := h.service.Upcoming(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}

	items := make([]UpcomingItem, 0, len(list))
	for _, r := range list {
		items = append(items, UpcomingItem{
			AccommodationID: r.AccommodationID,
			DateFrom:        r.DateFrom.Format(domain.DateFormat),
			DateTo:          r.DateTo.Format(domain.DateFormat),
		})
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": items})
}
