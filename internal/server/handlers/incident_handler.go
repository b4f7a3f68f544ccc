package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tally-service/internal/models"
	"tally-service/internal/server/middleware"
	"tally-service/internal/service"
	"tally-service/pkg/response"
)

type IncidentHandler struct {
	incidentService *service.IncidentService
}

func NewIncidentHandler(incidentService *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// @Summary Report an incident
// @Tags incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.IncidentRequest true "Incident"
// @Success 201 {object} models.Incident
// @Failure 400 {object} map[string]string
// @Router /incidents [post]
func (h *IncidentHandler) Create(c *gin.Context) {
	var req models.IncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.Report(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

// @Summary List incidents
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Incident
// @Router /incidents [get]
func (h *IncidentHandler) List(c *gin.Context) {
	incidents, err := h.incidentService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Resolve an incident
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 409 {object} map[string]string
// @Router /admin/incidents/{id}/resolve [put]
func (h *IncidentHandler) Resolve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return
	}

	incident, err := h.incidentService.Resolve(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}
