package accommodation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(service).RegisterRoutes(r.Group("/"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReverseGeocodeHandler_ZeroCoordinatesAreValid(t *testing.T) {
	service, _, _, _, geocoder := newTestService()
	geocoder.On("Reverse", mock.Anything, 0.0, 0.0).Return("Null Island", nil)
	r := newTestRouter(service)

	// The equator / prime meridian intersection is a legitimate coordinate.
	w := postJSON(r, "/geocode/reverse", `{"latitude":0,"longitude":0}`)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Null Island")
	geocoder.AssertExpectations(t)
}

func TestReverseGeocodeHandler_MissingAndOutOfRangeCoordinates(t *testing.T) {
	service, _, _, _, geocoder := newTestService()
	r := newTestRouter(service)

	// Absent fields are still rejected.
	w := postJSON(r, "/geocode/reverse", `{"latitude":48.1486}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// As are coordinates outside the valid ranges.
	w = postJSON(r, "/geocode/reverse", `{"latitude":91,"longitude":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/geocode/reverse", `{"latitude":0,"longitude":-181}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	geocoder.AssertNotCalled(t, "Reverse")
}
