package like

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/likes", h.Toggle)
	rg.GET("/likes", h.Liked)
}

func (h *Handler) Toggle(c *gin.Context) {
	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "aid is required")
		return
	}

	liked, err := h.service.Toggle(c.Request.Context(), c.GetInt64("user_id"), req.AccommodationID)
	if err != nil {
		if errors.Is(err, ErrAccommodationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle like")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"liked": liked})
}

func (h *Handler) Liked(c *gin.Context) {
	rows, err := h.service.Liked(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load liked accommodations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodations": toLikedItems(rows)})
}
