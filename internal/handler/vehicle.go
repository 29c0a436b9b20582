package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"vehicles-api/internal/models"
	"vehicles-api/internal/service"

	"github.com/gin-gonic/gin"
)

// VehicleHandler handles vehicle CRUD requests
type VehicleHandler struct {
	service VehicleService
}

// Service interface for dependency injection
type VehicleService interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id int64) (*models.Vehicle, error)
	Save(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(svc VehicleService) *VehicleHandler {
	return &VehicleHandler{service: svc}
}

// List handles GET /vehicles requests
//
//	@Summary	List all vehicles
//	@Tags		vehicles
//	@Produce	json
//	@Success	200	{array}	models.Vehicle
//	@Router		/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get handles GET /vehicles/:id requests
//
//	@Summary	Get one vehicle with its current price and address
//	@Tags		vehicles
//	@Produce	json
//	@Param		id	path		int	true	"Vehicle ID"
//	@Success	200	{object}	models.Vehicle
//	@Failure	404	{object}	map[string]string
//	@Router		/vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	vehicle, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// Create handles POST /vehicles requests
//
//	@Summary	Create a vehicle
//	@Tags		vehicles
//	@Accept		json
//	@Produce	json
//	@Param		vehicle	body		models.Vehicle	true	"Vehicle to create"
//	@Success	201		{object}	models.Vehicle
//	@Router		/vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	v.ID = 0

	created, err := h.service.Save(c.Request.Context(), &v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /vehicles/:id requests. The id in the path wins over any id in
// the body.
//
//	@Summary	Update a vehicle's details and coordinates
//	@Tags		vehicles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Vehicle ID"
//	@Param		vehicle	body		models.Vehicle	true	"New details and location"
//	@Success	200		{object}	models.Vehicle
//	@Failure	404		{object}	map[string]string
//	@Router		/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	v.ID = id

	updated, err := h.service.Save(c.Request.Context(), &v)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /vehicles/:id requests
//
//	@Summary	Delete a vehicle
//	@Tags		vehicles
//	@Param		id	path	int	true	"Vehicle ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func vehicleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return 0, false
	}
	return id, true
}
