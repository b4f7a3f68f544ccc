package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tally-service/internal/models"
	"tally-service/internal/server/middleware"
	"tally-service/internal/service"
	"tally-service/pkg/response"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// @Summary Record a vote tally
// @Description Append a pending tally submission, either tally-only or with per-candidate counts
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SubmissionRequest true "Submission"
// @Success 201 {array} models.Submission
// @Failure 400 {object} map[string]string
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.submissionService.Record(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Each row carries its reconciliation flag so review screens can render
	// the warning without re-deriving it.
	type submissionWithCheck struct {
		*models.Submission
		Reconciles bool `json:"reconciles"`
	}
	out := make([]submissionWithCheck, 0, len(rows))
	for _, row := range rows {
		out = append(out, submissionWithCheck{Submission: row, Reconciles: service.Reconciles(row)})
	}
	c.JSON(http.StatusCreated, out)
}

// @Summary List submissions
// @Description Admins see all matching records; agents only their own
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param position query string false "Position"
// @Param district query string false "District"
// @Param subcounty query string false "Subcounty"
// @Param parish query string false "Parish"
// @Param village query string false "Village"
// @Param status query string false "Status"
// @Success 200 {array} models.Submission
// @Router /submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	filter := models.SubmissionFilter{
		Position:  c.Query("position"),
		District:  c.Query("district"),
		Subcounty: c.Query("subcounty"),
		Parish:    c.Query("parish"),
		Village:   c.Query("village"),
		Status:    c.Query("status"),
	}

	rows, err := h.submissionService.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	type submissionWithCheck struct {
		*models.Submission
		Reconciles bool `json:"reconciles"`
	}
	out := make([]submissionWithCheck, 0, len(rows))
	for _, row := range rows {
		out = append(out, submissionWithCheck{Submission: row, Reconciles: service.Reconciles(row)})
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Approve a submission
// @Description Transition a pending submission to approved
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 409 {object} map[string]string
// @Router /admin/submissions/{id}/approve [put]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	h.decide(c, h.submissionService.Approve)
}

// @Summary Reject a submission
// @Description Transition a pending submission to rejected
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 409 {object} map[string]string
// @Router /admin/submissions/{id}/reject [put]
func (h *SubmissionHandler) Reject(c *gin.Context) {
	h.decide(c, h.submissionService.Reject)
}

func (h *SubmissionHandler) decide(c *gin.Context, fn func(ctx context.Context, id uint) (*models.Submission, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	submission, err := fn(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}
