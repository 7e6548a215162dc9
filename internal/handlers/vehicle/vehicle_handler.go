package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	domain "lionscars-service/internal/domain/vehicle"
	xerrors "lionscars-service/internal/pkg/errors"
	"lionscars-service/internal/pkg/response"
	"lionscars-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	catalogService *catalog.CatalogService
}

func NewVehicleHandler(catalogService *catalog.CatalogService) *VehicleHandler {
	return &VehicleHandler{
		catalogService: catalogService,
	}
}

// List returns the catalog snapshot, optionally filtered by the query
// string (search term, seller and the structured criteria).
func (h *VehicleHandler) List(c *gin.Context) {
	var criteria domain.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filter criteria", err)
		return
	}

	stock, err := h.catalogService.Search(c.Request.Context(), c.Query("q"), c.Query("vendedor"), criteria)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list vehicles", err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// Get returns one vehicle.
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	v, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "vehicle not found", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Create lists a new vehicle.
func (h *VehicleHandler) Create(c *gin.Context) {
	var req domain.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	v, err := h.catalogService.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "failed to create vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Update edits an existing vehicle.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	var req domain.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	v, err := h.catalogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, "failed to update vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to delete vehicle", err)
		return
	}
	response.Success(c, http.StatusOK, "vehicle deleted", nil)
}

type addHotspotRequest struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Label      string  `json:"label" binding:"required"`
	Detail     string  `json:"detail"`
	ImageIndex int     `json:"imageIndex"`
}

// AddHotspot stores a finalized annotation on one of the vehicle's images.
func (h *VehicleHandler) AddHotspot(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	var req addHotspotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	v, err := h.catalogService.AddHotspot(c.Request.Context(), id, req.X, req.Y, req.Label, req.Detail, req.ImageIndex)
	if err != nil {
		h.fail(c, "failed to add hotspot", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// DeleteHotspot removes an annotation by id.
func (h *VehicleHandler) DeleteHotspot(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	v, err := h.catalogService.DeleteHotspot(c.Request.Context(), id, c.Param("hotspot_id"))
	if err != nil {
		h.fail(c, "failed to delete hotspot", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// RemoveImage drops an image and reindexes the vehicle's hotspots.
func (h *VehicleHandler) RemoveImage(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid image index", err)
		return
	}
	v, err := h.catalogService.RemoveImage(c.Request.Context(), id, index)
	if err != nil {
		h.fail(c, "failed to remove image", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// RecordView counts a storefront visit to a vehicle's detail view.
func (h *VehicleHandler) RecordView(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	if err := h.catalogService.RecordView(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to record view", err)
		return
	}
	response.Success(c, http.StatusOK, "view recorded", nil)
}

// RecordLead counts an interested lead.
func (h *VehicleHandler) RecordLead(c *gin.Context) {
	id, err := h.vehicleID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}
	if err := h.catalogService.RecordLead(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to record lead", err)
		return
	}
	response.Success(c, http.StatusOK, "lead recorded", nil)
}

// Dashboard serves the aggregated seller metrics.
func (h *VehicleHandler) Dashboard(c *gin.Context) {
	stats, err := h.catalogService.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to compute dashboard", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SimulateMetrics injects randomized engagement across the stock.
func (h *VehicleHandler) SimulateMetrics(c *gin.Context) {
	updated, err := h.catalogService.SimulateEngagement(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to simulate metrics", err)
		return
	}
	response.Success(c, http.StatusOK, "metrics simulated", gin.H{"updated": updated})
}

// ResetMetrics zeroes engagement counters across the stock.
func (h *VehicleHandler) ResetMetrics(c *gin.Context) {
	if err := h.catalogService.ResetMetrics(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to reset metrics", err)
		return
	}
	response.Success(c, http.StatusOK, "metrics reset", nil)
}

func (h *VehicleHandler) vehicleID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// fail maps service errors onto HTTP statuses.
func (h *VehicleHandler) fail(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.Error(c, http.StatusNotFound, message, err)
	case errors.Is(err, xerrors.ErrValidation):
		response.Error(c, http.StatusBadRequest, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
