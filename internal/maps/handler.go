package maps

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler handles address resolution requests
type Handler struct {
	provider *AddressProvider
}

// NewHandler creates a new maps handler
func NewHandler(p *AddressProvider) *Handler {
	return &Handler{provider: p}
}

// GetAddress handles GET /maps requests
func (h *Handler) GetAddress(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	c.JSON(http.StatusOK, h.provider.AddressFor(lat, lon))
}
