package search

import (
	"errors"
	"net/http"
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
	rg.POST("/search", h.Search)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	q := Query{Address: req.Address, Guests: req.Guests}
	var err error
	if req.DateFrom != "" {
		if q.From, err = time.Parse(domain.DateFormat, req.DateFrom); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_from must be YYYY-MM-DD")
			return
		}
	}
	if req.DateTo != "" {
		if q.To, err = time.Parse(domain.DateFormat, req.DateTo); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_to must be YYYY-MM-DD")
			return
		}
	}

	results, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_from and date_to must be given together, in order")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accommodations": results})
}
