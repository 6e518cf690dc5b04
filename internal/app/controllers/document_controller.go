package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/services"
	"github.com/oguzk/disiplintakip/internal/middleware"
)

// DocumentController renders the printable forms
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// ListDocuments lists the document catalog
// @Summary List document types
// @Description Returns every available document template in print order
// @Tags documents
// @Produce json
// @Success 200 {array} document.Info "Document catalog"
// @Router /documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.documentService.Catalog())
}

// RenderDocument renders one document
// @Summary Render a document
// @Description Renders a printable form, either blank with dotted placeholders or bound to a selected student and incident
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.RenderDocumentRequest true "Render request"
// @Success 200 {object} document.Result "Rendered document"
// @Failure 400 {object} dto.ErrorResponse "Unknown type or missing selection"
// @Failure 404 {object} dto.ErrorResponse "Incident not found"
// @Router /documents/render [post]
func (c *DocumentController) RenderDocument(ctx *gin.Context) {
	var req dto.RenderDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz belge isteği")
		return
	}

	result, err := c.documentService.Render(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
