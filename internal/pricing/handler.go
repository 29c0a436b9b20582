package pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler handles price lookup requests
type Handler struct {
	service *Service
}

// NewHandler creates a new pricing handler
func NewHandler(svc *Service) *Handler {
	return &Handler{service: svc}
}

// GetPrice handles GET /services/price requests
func (h *Handler) GetPrice(c *gin.Context) {
	idStr := c.Query("vehicleId")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'vehicleId'"})
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicleId format"})
		return
	}

	price, err := h.service.PriceForVehicle(id)
	if err != nil {
		if errors.Is(err, ErrPriceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no price found for the specified vehicle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, price)
}
