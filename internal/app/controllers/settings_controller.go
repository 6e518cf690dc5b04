package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/services"
	"github.com/oguzk/disiplintakip/internal/middleware"
)

// SettingsController manages the institution profile, board seats and
// the AI API key
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// GetInstitution returns the school configuration
// @Summary Get institution settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Institution "Institution retrieved successfully"
// @Router /settings/institution [get]
func (c *SettingsController) GetInstitution(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.settingsService.Institution())
}

// SaveInstitution replaces the school configuration
// @Summary Save institution settings
// @Description Replaces the school configuration. The type selects the regulation dataset.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.Institution true "Institution configuration"
// @Success 200 {object} models.Institution "Institution saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution data"
// @Router /settings/institution [put]
func (c *SettingsController) SaveInstitution(ctx *gin.Context) {
	var inst models.Institution
	if err := ctx.ShouldBindJSON(&inst); err != nil {
		bindError(ctx, err, "Geçersiz kurum verisi")
		return
	}
	ctx.JSON(http.StatusOK, c.settingsService.SaveInstitution(inst))
}

// GetBoard returns the board seat list
// @Summary Get board members
// @Tags settings
// @Produce json
// @Success 200 {array} models.BoardMember "Board retrieved successfully"
// @Router /settings/board [get]
func (c *SettingsController) GetBoard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.settingsService.BoardMembers())
}

// SaveBoard replaces the board seat list
// @Summary Save board members
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.SaveBoardRequest true "Board seat list"
// @Success 200 {array} models.BoardMember "Board saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid board data"
// @Router /settings/board [put]
func (c *SettingsController) SaveBoard(ctx *gin.Context) {
	var req dto.SaveBoardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz kurul verisi")
		return
	}
	ctx.JSON(http.StatusOK, c.settingsService.SaveBoardMembers(req.Members))
}

// DeleteBoardMember removes one board seat
// @Summary Delete a board member
// @Description Removes one seat. The board never shrinks below 3 members through deletion.
// @Tags settings
// @Produce json
// @Param id path string true "Board member ID"
// @Success 200 {array} models.BoardMember "Board after deletion"
// @Failure 400 {object} dto.ErrorResponse "Board at minimum size"
// @Failure 404 {object} dto.ErrorResponse "Board member not found"
// @Router /settings/board/{id} [delete]
func (c *SettingsController) DeleteBoardMember(ctx *gin.Context) {
	members, err := c.settingsService.DeleteBoardMember(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, members)
}

// SaveAPIKey stores the Gemini API key
// @Summary Save the AI API key
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.APIKeyRequest true "API key"
// @Success 200 {object} dto.SuccessResponse "API key saved"
// @Failure 400 {object} dto.ErrorResponse "Missing key"
// @Router /settings/apikey [put]
func (c *SettingsController) SaveAPIKey(ctx *gin.Context) {
	var req dto.APIKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz anahtar verisi")
		return
	}
	c.settingsService.SaveAPIKey(req.Key)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "API anahtarı kaydedildi"})
}
