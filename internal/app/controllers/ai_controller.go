package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/services"
	"github.com/oguzk/disiplintakip/internal/middleware"
)

// AIController exposes the Gemini-backed assistant operations
type AIController struct {
	aiService *services.AIService
}

// NewAIController creates a new AIController
func NewAIController(aiService *services.AIService) *AIController {
	return &AIController{aiService: aiService}
}

// AnalyzeIncident produces an AI analysis for one suspect
// @Summary Analyze an incident
// @Description Produces a severity assessment and procedural roadmap and caches it on the involvement. Offline calls return a fixed fallback text.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Analysis target"
// @Success 200 {object} dto.AITextResponse "Analysis text"
// @Failure 404 {object} dto.ErrorResponse "Incident or involvement not found"
// @Failure 422 {object} dto.ErrorResponse "API key missing"
// @Router /ai/analyze [post]
func (c *AIController) AnalyzeIncident(ctx *gin.Context) {
	var req dto.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz analiz isteği")
		return
	}

	resp, err := c.aiService.Analyze(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GenerateReason drafts a decision justification
// @Summary Generate a decision reason
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateReasonRequest true "Reason request"
// @Success 200 {object} dto.AITextResponse "Reason text"
// @Failure 404 {object} dto.ErrorResponse "Incident or involvement not found"
// @Router /ai/reason [post]
func (c *AIController) GenerateReason(ctx *gin.Context) {
	var req dto.GenerateReasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz gerekçe isteği")
		return
	}

	resp, err := c.aiService.GenerateReason(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SearchRegulations answers a regulation question
// @Summary Search the regulations
// @Description Answers a free-text question grounded on the official MEB regulation texts via Google Search
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.SearchRegulationsRequest true "Search query"
// @Success 200 {object} dto.AITextResponse "Answer text"
// @Router /ai/search [post]
func (c *AIController) SearchRegulations(ctx *gin.Context) {
	var req dto.SearchRegulationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz arama isteği")
		return
	}

	resp, err := c.aiService.SearchRegulations(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// FetchBoardInfo summarizes the mandated board composition
// @Summary Fetch board composition info
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.BoardInfoRequest true "Regulation URL"
// @Success 200 {object} dto.AITextResponse "Summary text"
// @Router /ai/board-info [post]
func (c *AIController) FetchBoardInfo(ctx *gin.Context) {
	var req dto.BoardInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz mevzuat isteği")
		return
	}

	resp, err := c.aiService.FetchBoardInfo(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ValidateKey checks a candidate API key
// @Summary Validate an AI API key
// @Description Checks the key against the live API with a minimal generation call
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.APIKeyRequest true "Candidate key"
// @Success 200 {object} dto.KeyValidationResponse "Validation result"
// @Router /ai/validate-key [post]
func (c *AIController) ValidateKey(ctx *gin.Context) {
	var req dto.APIKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz anahtar verisi")
		return
	}

	valid := c.aiService.ValidateKey(ctx.Request.Context(), req.Key)
	ctx.JSON(http.StatusOK, dto.KeyValidationResponse{Valid: valid})
}
