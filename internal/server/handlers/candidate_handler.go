package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tally-service/internal/models"
	"tally-service/internal/service"
	"tally-service/pkg/response"
)

type CandidateHandler struct {
	candidateService *service.CandidateService
}

func NewCandidateHandler(candidateService *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// @Summary List candidates
// @Description With position and district set, returns the ballot for that scope; without, the full roster
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param position query string false "Position"
// @Param district query string false "District"
// @Success 200 {array} models.Candidate
// @Router /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	position := c.Query("position")
	district := c.Query("district")

	var candidates []*models.Candidate
	var err error
	if position != "" || district != "" {
		candidates, err = h.candidateService.ListByScope(c.Request.Context(), position, district)
	} else {
		candidates, err = h.candidateService.List(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// @Summary Create a candidate
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CandidateRequest true "Candidate"
// @Success 201 {object} models.Candidate
// @Router /admin/candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req models.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.candidateService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// @Summary Update a candidate
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Param request body models.CandidateRequest true "Candidate"
// @Success 200 {object} models.Candidate
// @Router /admin/candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	var req models.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.candidateService.Update(c.Request.Context(), uint(id), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// @Summary Delete a candidate
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Success 200 {object} map[string]string
// @Router /admin/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	if err := h.candidateService.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "candidate deleted"})
}
