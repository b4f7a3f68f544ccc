package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tally-service/internal/models"
	"tally-service/internal/service"
	"tally-service/pkg/response"
)

type ConfigHandler struct {
	configService *service.ConfigService
}

func NewConfigHandler(configService *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// @Summary List districts
// @Description Districts with their subunit hierarchy, for selection controls
// @Tags config
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.District
// @Router /config/districts [get]
func (h *ConfigHandler) ListDistricts(c *gin.Context) {
	districts, err := h.configService.ListDistricts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, districts)
}

// @Summary List positions
// @Tags config
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Position
// @Router /config/positions [get]
func (h *ConfigHandler) ListPositions(c *gin.Context) {
	positions, err := h.configService.ListPositions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

// @Summary Create a district
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DistrictRequest true "District"
// @Success 201 {object} models.District
// @Router /admin/config/districts [post]
func (h *ConfigHandler) CreateDistrict(c *gin.Context) {
	var req models.DistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	district, err := h.configService.CreateDistrict(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, district)
}

// @Summary Update a district
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "District ID"
// @Param request body models.DistrictRequest true "District"
// @Success 200 {object} models.District
// @Router /admin/config/districts/{id} [put]
func (h *ConfigHandler) UpdateDistrict(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid district id"})
		return
	}

	var req models.DistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	district, err := h.configService.UpdateDistrict(c.Request.Context(), uint(id), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, district)
}

// @Summary Delete a district
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param id path int true "District ID"
// @Success 200 {object} map[string]string
// @Router /admin/config/districts/{id} [delete]
func (h *ConfigHandler) DeleteDistrict(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid district id"})
		return
	}

	if err := h.configService.DeleteDistrict(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "district deleted"})
}

// @Summary Create a position
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PositionRequest true "Position"
// @Success 201 {object} models.Position
// @Router /admin/config/positions [post]
func (h *ConfigHandler) CreatePosition(c *gin.Context) {
	var req models.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.configService.CreatePosition(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, position)
}

// @Summary Update a position
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Param request body models.PositionRequest true "Position"
// @Success 200 {object} models.Position
// @Router /admin/config/positions/{id} [put]
func (h *ConfigHandler) UpdatePosition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position id"})
		return
	}

	var req models.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.configService.UpdatePosition(c.Request.Context(), uint(id), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// @Summary Delete a position
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} map[string]string
// @Router /admin/config/positions/{id} [delete]
func (h *ConfigHandler) DeletePosition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position id"})
		return
	}

	if err := h.configService.DeletePosition(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "position deleted"})
}
