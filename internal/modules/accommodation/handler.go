package accommodation

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
)

// Images are immutable once uploaded, so clients may cache them for an hour.
const imageCacheControl = "public, max-age=3600"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/accommodations", h.Create)
	rg.PUT("/accommodations/:id", h.Update)
	rg.DELETE("/accommodations/:id", h.Delete)
	rg.GET("/accommodations/:id", h.Details)
	rg.GET("/accommodations/:id/confirmation", h.Confirmation)
	rg.GET("/accommodations/:id/images/:index", h.Image)
	rg.GET("/accommodations/mine", h.Mine)
	rg.GET("/main-screen-accommodations", h.MainScreen)
	rg.POST("/geocode/reverse", h.ReverseGeocode)
}

func (h *Handler) Create(c *gin.Context) {
	in, ok := h.bindListingForm(c)
	if !ok {
		return
	}

	a, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), in)
	if err != nil {
		h.writeListingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"accommodation": gin.H{"id": a.ID}})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	in, ok := h.bindListingForm(c)
	if !ok {
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), in)
	if err != nil {
		h.writeListingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accommodation": gin.H{"id": a.ID}})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete accommodation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Details(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	d, err := h.service.Details(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accommodation": toDetailsResponse(d)})
}

func (h *Handler) Confirmation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	price, iban, err := h.service.Confirmation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load confirmation details")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"price": price, "iban": iban})
}

func (h *Handler) Image(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image index must be a positive integer")
		return
	}

	content, err := h.service.Image(c.Request.Context(), id, index)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load image")
		return
	}

	c.Header("Cache-Control", imageCacheControl)
	c.Data(http.StatusOK, http.DetectContentType(content), content)
}

func (h *Handler) Mine(c *gin.Context) {
	list, err := h.service.Mine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodations": list})
}

func (h *Handler) MainScreen(c *gin.Context) {
	rows, err := h.service.MainScreen(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodations": toMainScreenItems(rows)})
}

func (h *Handler) ReverseGeocode(c *gin.Context) {
	var req ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "latitude and longitude are required")
		return
	}

	addr, err := h.service.ReverseAddress(c.Request.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAddress):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No address found for these coordinates")
		case errors.Is(err, ErrGeocodeUnavailable):
			response.Error(c, http.StatusBadGateway, "GEOCODE_UNAVAILABLE", "Geocoding service is unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve address")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"address": addr})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation id")
		return 0, false
	}
	return id, true
}

// bindListingForm reads the multipart create/edit form. Images arrive as the
// repeated "images" file field.
func (h *Handler) bindListingForm(c *gin.Context) (ListingInput, bool) {
	var in ListingInput

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Expected a multipart form")
		return in, false
	}

	in.Name = c.PostForm("name")
	in.Address = c.PostForm("address")
	in.Description = c.PostForm("description")
	in.IBAN = c.PostForm("iban")

	if guests := c.PostForm("guests"); guests != "" {
		in.MaxGuests, err = strconv.Atoi(guests)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "guests must be an integer")
			return in, false
		}
	}
	if price := c.PostForm("price"); price != "" {
		in.PricePerNight, err = strconv.ParseFloat(price, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "price must be a number")
			return in, false
		}
	}

	for _, fh := range form.File["images"] {
		content, err := readImageFile(fh)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read uploaded image")
			return in, false
		}
		in.Images = append(in.Images, content)
	}

	return in, true
}

func readImageFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *Handler) writeListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All fields and at least 3 images are required")
	case errors.Is(err, ErrInvalidAddress):
		response.Error(c, http.StatusBadRequest, "INVALID_ADDRESS", "Address could not be resolved")
	case errors.Is(err, ErrGeocodeUnavailable):
		response.Error(c, http.StatusBadGateway, "GEOCODE_UNAVAILABLE", "Geocoding service is unavailable")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save accommodation")
	}
}
