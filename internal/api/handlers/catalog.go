package handlers

import (
	"net/http"

	"atlas-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the reference catalog
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListRegions handles GET /catalog/regions
// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Region
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /catalog/regions [get]
func (h *CatalogHandler) ListRegions(c *gin.Context) {
	regions, err := h.catalogService.ListRegions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

// ListSDGs handles GET /catalog/sdgs
// @Summary List Sustainable Development Goals
// @Tags catalog
// @Produce json
// @Success 200 {array} models.SDG
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /catalog/sdgs [get]
func (h *CatalogHandler) ListSDGs(c *gin.Context) {
	sdgs, err := h.catalogService.ListSDGs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sdgs)
}

// ListTypologies handles GET /catalog/typologies
// @Summary List project typologies
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Typology
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /catalog/typologies [get]
func (h *CatalogHandler) ListTypologies(c *gin.Context) {
	typologies, err := h.catalogService.ListTypologies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, typologies)
}

// ListRequirements handles GET /catalog/requirements
// @Summary List requirement tags grouped by category
// @Tags catalog
// @Produce json
// @Success 200 {array} service.RequirementGroup
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /catalog/requirements [get]
func (h *CatalogHandler) ListRequirements(c *gin.Context) {
	groups, err := h.catalogService.ListRequirements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
