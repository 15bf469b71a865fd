package handlers

import (
	"net/http"

	"atlas-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the public dashboard statistics
type StatsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(analyticsService service.AnalyticsServiceInterface) *StatsHandler {
	return &StatsHandler{analyticsService: analyticsService}
}

// KPIs handles GET /stats/kpis
// @Summary Dashboard headline numbers
// @Description Accepts the same filter parameters as the project list.
// @Tags stats
// @Produce json
// @Success 200 {object} service.KPIs
// @Failure 400 {object} ValidationErrorResponse "Malformed filter"
// @Router /stats/kpis [get]
func (h *StatsHandler) KPIs(c *gin.Context) {
	filter, err := parseFilter(c, false)
	if err != nil {
		respondError(c, err)
		return
	}
	kpis, err := h.analyticsService.KPIs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// SDGDistribution handles GET /stats/sdgs
// @Summary Projects per SDG
// @Tags stats
// @Produce json
// @Success 200 {array} service.SDGCount
// @Failure 400 {object} ValidationErrorResponse "Malformed filter"
// @Router /stats/sdgs [get]
func (h *StatsHandler) SDGDistribution(c *gin.Context) {
	filter, err := parseFilter(c, false)
	if err != nil {
		respondError(c, err)
		return
	}
	counts, err := h.analyticsService.SDGDistribution(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// FundingByRegion handles GET /stats/regions
// @Summary Funding per region
// @Tags stats
// @Produce json
// @Success 200 {array} service.RegionFunding
// @Failure 400 {object} ValidationErrorResponse "Malformed filter"
// @Router /stats/regions [get]
func (h *StatsHandler) FundingByRegion(c *gin.Context) {
	filter, err := parseFilter(c, false)
	if err != nil {
		respondError(c, err)
		return
	}
	regions, err := h.analyticsService.FundingByRegion(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

// Cities handles GET /stats/cities
// @Summary Distinct cities with published projects
// @Tags stats
// @Produce json
// @Success 200 {array} string
// @Router /stats/cities [get]
func (h *StatsHandler) Cities(c *gin.Context) {
	cities, err := h.analyticsService.UniqueCities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// Organizations handles GET /stats/organizations
// @Summary Distinct organizations with published projects
// @Tags stats
// @Produce json
// @Success 200 {array} string
// @Router /stats/organizations [get]
func (h *StatsHandler) Organizations(c *gin.Context) {
	orgs, err := h.analyticsService.UniqueOrganizations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}
