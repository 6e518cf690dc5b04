package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/services"
	"github.com/oguzk/disiplintakip/internal/middleware"
)

// IncidentController handles incident files and their involvements
type IncidentController struct {
	incidentService *services.IncidentService
}

// NewIncidentController creates a new IncidentController
func NewIncidentController(incidentService *services.IncidentService) *IncidentController {
	return &IncidentController{incidentService: incidentService}
}

func bindError(ctx *gin.Context, err error, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// ListIncidents lists all incident files
// @Summary List incidents
// @Description Returns every incident file
// @Tags incidents
// @Produce json
// @Success 200 {array} models.Incident "Incidents retrieved successfully"
// @Router /incidents [get]
func (c *IncidentController) ListIncidents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.incidentService.List())
}

// GetIncident retrieves one incident
// @Summary Get incident by ID
// @Tags incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident "Incident retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Incident not found"
// @Router /incidents/{id} [get]
func (c *IncidentController) GetIncident(ctx *gin.Context) {
	incident, err := c.incidentService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, incident)
}

// CreateIncident opens a new incident file
// @Summary Create an incident
// @Description Opens a new incident file with a server-assigned OLAY code
// @Tags incidents
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentRequest true "Incident information"
// @Success 201 {object} models.Incident "Incident created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid incident data"
// @Router /incidents [post]
func (c *IncidentController) CreateIncident(ctx *gin.Context) {
	var req dto.CreateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz olay verisi")
		return
	}

	incident, err := c.incidentService.Create(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, incident)
}

// UpdateIncident mutates the descriptive fields of an incident
// @Summary Update an incident
// @Description Updates incident fields. The OLAY code is immutable and the status stays derived.
// @Tags incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param request body dto.UpdateIncidentRequest true "Incident fields"
// @Success 200 {object} models.Incident "Incident updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid incident data"
// @Failure 404 {object} dto.ErrorResponse "Incident not found"
// @Router /incidents/{id} [put]
func (c *IncidentController) UpdateIncident(ctx *gin.Context) {
	var req dto.UpdateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz olay verisi")
		return
	}

	incident, err := c.incidentService.Update(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, incident)
}

// DeleteIncident removes an incident file
// @Summary Delete an incident
// @Description Removes an incident. Its OLAY code is never reissued.
// @Tags incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} dto.SuccessResponse "Incident deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Incident not found"
// @Router /incidents/{id} [delete]
func (c *IncidentController) DeleteIncident(ctx *gin.Context) {
	if err := c.incidentService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Olay kaydı silindi"})
}

// AddInvolvement links a student to an incident
// @Summary Add an involvement
// @Description Links a student to an incident with a role. A student appears at most once per incident.
// @Tags incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param request body dto.AddInvolvementRequest true "Involvement information"
// @Success 200 {object} models.Incident "Involvement added"
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 404 {object} dto.ErrorResponse "Incident or student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already involved"
// @Router /incidents/{id}/involvements [post]
func (c *IncidentController) AddInvolvement(ctx *gin.Context) {
	var req dto.AddInvolvementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz ilişki verisi")
		return
	}

	incident, err := c.incidentService.AddInvolvement(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, incident)
}

// UpdateInvolvement rewrites the involvement of one student
// @Summary Update an involvement
// @Description Rewrites the involvement state, decision block included, and re-derives the incident status
// @Tags incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param studentId path string true "Student ID"
// @Param request body dto.UpdateInvolvementRequest true "Involvement state"
// @Success 200 {object} models.Incident "Involvement updated"
// @Failure 404 {object} dto.ErrorResponse "Incident or involvement not found"
// @Router /incidents/{id}/involvements/{studentId} [put]
func (c *IncidentController) UpdateInvolvement(ctx *gin.Context) {
	var req dto.UpdateInvolvementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Geçersiz ilişki verisi")
		return
	}

	incident, err := c.incidentService.UpdateInvolvement(ctx.Param("id"), ctx.Param("studentId"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, incident)
}

// RemoveInvolvement detaches a student from an incident
// @Summary Remove an involvement
// @Description Detaches a student from an incident without touching the incident status
// @Tags incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.Incident "Involvement removed"
// @Failure 404 {object} dto.ErrorResponse "Incident or involvement not found"
// @Router /incidents/{id}/involvements/{studentId} [delete]
func (c *IncidentController) RemoveInvolvement(ctx *gin.Context) {
	incident, err := c.incidentService.RemoveInvolvement(ctx.Param("id"), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, incident)
}
