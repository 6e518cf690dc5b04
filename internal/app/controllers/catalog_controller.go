package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/services"
	"github.com/oguzk/disiplintakip/internal/middleware"
)

// CatalogController exposes the penalty catalog operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetCatalog returns the active penalty dataset
// @Summary Get penalty catalog
// @Description Returns the regulation dataset matching the configured institution type
// @Tags catalog
// @Produce json
// @Success 200 {object} regulation.Dataset "Catalog retrieved successfully"
// @Router /catalog [get]
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalogService.Dataset())
}

// ApplyArticle applies a catalog article as a decision proposal
// @Summary Apply a penalty article
// @Description Records the article as a decision proposal on one involvement. Proposals carry no decision number.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.ApplyCatalogRequest true "Application target"
// @Success 200 {object} models.Incident "Proposal recorded"
// @Failure 400 {object} dto.ErrorResponse "Not a suspect"
// @Failure 404 {object} dto.ErrorResponse "Incident, involvement or article not found"
// @Router /catalog/apply [post]
func (c *CatalogController) ApplyArticle(ctx *gin.Context) {
	var req dto.ApplyCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz yaptırım isteği")
		return
	}

	incident, err := c.catalogService.Apply(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, incident)
}
