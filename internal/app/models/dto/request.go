package dto

import (
	"github.com/oguzk/disiplintakip/internal/app/document"
	"github.com/oguzk/disiplintakip/internal/app/models"
)

// CreateStudentRequest carries a manual student entry. ID and code
// assignment happen server side.
type CreateStudentRequest struct {
	models.Student
}

// CreateIncidentRequest opens a new incident file. The OLAY code is
// assigned by the server and must not be supplied.
type CreateIncidentRequest struct {
	Title            string                   `json:"title" binding:"required"`
	Date             string                   `json:"date" binding:"required"`
	Time             string                   `json:"time"`
	Location         string                   `json:"location"`
	Description      string                   `json:"description"`
	InvolvedStudents []models.InvolvedStudent `json:"involvedStudents"`
	Petitioner       string                   `json:"petitioner"`
	PetitionerInfo   string                   `json:"petitionerInfo"`
}

// UpdateIncidentRequest mutates incident fields. Code and status are
// not accepted: the code is immutable and the status is derived.
type UpdateIncidentRequest struct {
	Title          string `json:"title"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	Petitioner     string `json:"petitioner"`
	PetitionerInfo string `json:"petitionerInfo"`
}

// AddInvolvementRequest links a student to an incident.
type AddInvolvementRequest struct {
	StudentID string                 `json:"studentId" binding:"required"`
	Role      models.InvolvementRole `json:"role" binding:"required"`
	Notes     string                 `json:"notes"`
}

// UpdateInvolvementRequest records or amends the decision block of an
// involvement. Zero-value fields overwrite; clients send full state.
type UpdateInvolvementRequest struct {
	Role           models.InvolvementRole `json:"role"`
	Notes          string                 `json:"notes"`
	Decision       string                 `json:"decision"`
	DecisionNo     string                 `json:"decisionNo"`
	DecisionDate   string                 `json:"decisionDate"`
	DecisionReason string                 `json:"decisionReason"`
	PenaltyScore   string                 `json:"penaltyScore"`
}

// ApplyCatalogRequest applies a penalty article from the active
// regulation dataset to one involvement as a proposal.
type ApplyCatalogRequest struct {
	IncidentID  string `json:"incidentId" binding:"required"`
	StudentID   string `json:"studentId" binding:"required"`
	CategoryKey string `json:"categoryKey" binding:"required"`
	ArticleCode string `json:"articleCode" binding:"required"`
}

// RenderDocumentRequest asks for one printable form.
type RenderDocumentRequest struct {
	Type       document.Type     `json:"type" binding:"required"`
	Blank      bool              `json:"blank"`
	StudentID  string            `json:"studentId"`
	IncidentID string            `json:"incidentId"`
	Decision   document.Decision `json:"decision"`
	Meeting    *models.Meeting   `json:"meeting"`
}

// SaveBoardRequest replaces the full board seat list.
type SaveBoardRequest struct {
	Members []models.BoardMember `json:"members" binding:"required"`
}

// APIKeyRequest stores or validates a Gemini API key.
type APIKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// AnalyzeRequest asks for an AI incident analysis for one suspect.
type AnalyzeRequest struct {
	IncidentID string `json:"incidentId" binding:"required"`
	StudentID  string `json:"studentId" binding:"required"`
}

// GenerateReasonRequest asks for an AI-drafted decision reason.
type GenerateReasonRequest struct {
	IncidentID string `json:"incidentId" binding:"required"`
	StudentID  string `json:"studentId" binding:"required"`
	Penalty    string `json:"penalty" binding:"required"`
}

// SearchRegulationsRequest is a free-text regulation query.
type SearchRegulationsRequest struct {
	Query string `json:"query" binding:"required"`
}

// BoardInfoRequest asks for a board composition summary from a
// regulation URL.
type BoardInfoRequest struct {
	URL string `json:"url" binding:"required"`
}
