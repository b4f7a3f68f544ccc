package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tally-service/internal/models"
	"tally-service/internal/server/middleware"
	"tally-service/internal/service"
	"tally-service/pkg/response"
)

type ReportHandler struct {
	aggregationService *service.AggregationService
}

func NewReportHandler(aggregationService *service.AggregationService) *ReportHandler {
	return &ReportHandler{aggregationService: aggregationService}
}

func totalsFilter(c *gin.Context) models.TotalsFilter {
	return models.TotalsFilter{
		Position:  c.Query("position"),
		District:  c.Query("district"),
		Subcounty: c.Query("subcounty"),
		Parish:    c.Query("parish"),
		Village:   c.Query("village"),
	}
}

// @Summary Per-candidate vote totals
// @Description Aggregate approved submissions into per-candidate totals and percentage shares. Agents aggregate their own contributions only.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param position query string true "Position"
// @Param district query string true "District"
// @Param subcounty query string false "Subcounty"
// @Param parish query string false "Parish"
// @Param village query string false "Village"
// @Success 200 {array} models.CandidateTotal
// @Failure 400 {object} map[string]string
// @Router /totals [get]
func (h *ReportHandler) Totals(c *gin.Context) {
	totals, err := h.aggregationService.ComputeTotals(c.Request.Context(), middleware.CurrentUser(c), totalsFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// @Summary Export totals as CSV
// @Description Download the aggregation result as a Candidate,Total Votes CSV
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Param position query string true "Position"
// @Param district query string true "District"
// @Param subcounty query string false "Subcounty"
// @Param parish query string false "Parish"
// @Param village query string false "Village"
// @Success 200 {string} string
// @Router /reports/export [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	filter := totalsFilter(c)
	totals, err := h.aggregationService.ComputeTotals(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	csv := service.ReportCSV(totals)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ReportFilename(filter)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}
