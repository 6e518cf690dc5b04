package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/logger"
)

// IncidentService handles incident files and their involvements.
type IncidentService struct {
	incidents *repositories.IncidentRepository
	students  *repositories.StudentRepository
	settings  *repositories.SettingsRepository

	now func() time.Time
}

// NewIncidentService creates a new incident service instance.
func NewIncidentService(incidents *repositories.IncidentRepository, students *repositories.StudentRepository, settings *repositories.SettingsRepository) *IncidentService {
	return &IncidentService{
		incidents: incidents,
		students:  students,
		settings:  settings,
		now:       time.Now,
	}
}

// List returns all incidents, newest first.
func (s *IncidentService) List() []models.Incident {
	return s.incidents.List()
}

// Get returns one incident by id.
func (s *IncidentService) Get(id string) (models.Incident, error) {
	incident, ok := s.incidents.Get(id)
	if !ok {
		return models.Incident{}, apperrors.ErrIncidentNotFound
	}
	return incident, nil
}

// Create opens a new incident file with a freshly assigned OLAY code.
// Codes are strictly increasing within a year and never reused, even
// after deletions.
func (s *IncidentService) Create(req dto.CreateIncidentRequest) (models.Incident, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Incident{}, apperrors.NewValidationError("olay başlığı boş olamaz")
	}
	for _, rel := range req.InvolvedStudents {
		if !models.ValidRole(rel.Role) {
			return models.Incident{}, apperrors.ErrInvalidRole
		}
	}

	year := s.now().Year()
	seq := s.settings.NextIncidentSeq(year)

	incident := models.Incident{
		ID:               uuid.NewString(),
		Code:             fmt.Sprintf("OLAY%d-%03d", year, seq),
		Title:            req.Title,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Description:      req.Description,
		InvolvedStudents: req.InvolvedStudents,
		Petitioner:       req.Petitioner,
		PetitionerInfo:   req.PetitionerInfo,
		// New files open pending regardless of involvements; the status
		// is first derived on an involvement write.
		Status: models.StatusPending,
	}

	s.incidents.Add(incident)
	logger.Info().Str("incidentId", incident.ID).Str("code", incident.Code).Msg("Incident created")
	return incident, nil
}

// Update mutates the descriptive fields of an incident. The code is
// immutable and the status stays derived from the involvements.
func (s *IncidentService) Update(id string, req dto.UpdateIncidentRequest) (models.Incident, error) {
	incident, ok := s.incidents.Get(id)
	if !ok {
		return models.Incident{}, apperrors.ErrIncidentNotFound
	}

	incident.Title = req.Title
	incident.Date = req.Date
	incident.Time = req.Time
	incident.Location = req.Location
	incident.Description = req.Description
	incident.Petitioner = req.Petitioner
	incident.PetitionerInfo = req.PetitionerInfo

	s.incidents.Update(incident)
	return incident, nil
}

// Delete removes an incident file. The code it consumed stays burned.
func (s *IncidentService) Delete(id string) error {
	if !s.incidents.Remove(id) {
		return apperrors.ErrIncidentNotFound
	}
	logger.Info().Str("incidentId", id).Msg("Incident deleted")
	return nil
}

// AddInvolvement links a student to an incident. A student appears at
// most once per incident.
func (s *IncidentService) AddInvolvement(incidentID string, req dto.AddInvolvementRequest) (models.Incident, error) {
	incident, ok := s.incidents.Get(incidentID)
	if !ok {
		return models.Incident{}, apperrors.ErrIncidentNotFound
	}
	if !models.ValidRole(req.Role) {
		return models.Incident{}, apperrors.ErrInvalidRole
	}
	if _, ok := s.students.Get(req.StudentID); !ok {
		return models.Incident{}, apperrors.ErrStudentNotFound
	}
	if incident.Involvement(req.StudentID) != nil {
		return models.Incident{}, apperrors.ErrAlreadyInvolved
	}

	incident.InvolvedStudents = append(incident.InvolvedStudents, models.InvolvedStudent{
		StudentID: req.StudentID,
		Role:      req.Role,
		Notes:     req.Notes,
	})
	incident.Status = models.DeriveStatus(incident.InvolvedStudents)
	s.incidents.Update(incident)
	return incident, nil
}

// UpdateInvolvement rewrites the involvement state of one student,
// decision block included, and re-derives the incident status.
func (s *IncidentService) UpdateInvolvement(incidentID, studentID string, req dto.UpdateInvolvementRequest) (models.Incident, error) {
	incident, ok := s.incidents.Get(incidentID)
	if !ok {
		return models.Incident{}, apperrors.ErrIncidentNotFound
	}
	rel := incident.Involvement(studentID)
	if rel == nil {
		return models.Incident{}, apperrors.ErrInvolvementNotFound
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		return models.Incident{}, apperrors.ErrInvalidRole
	}

	if req.Role != "" {
		rel.Role = req.Role
	}
	rel.Notes = req.Notes
	rel.Decision = req.Decision
	rel.DecisionNo = req.DecisionNo
	rel.DecisionDate = req.DecisionDate
	rel.DecisionReason = req.DecisionReason
	rel.PenaltyScore = req.PenaltyScore

	incident.Status = models.DeriveStatus(incident.InvolvedStudents)
	s.incidents.Update(incident)
	return incident, nil
}

// ApplyInvolvementPatch merges a partial decision update onto one
// involvement and re-derives the status. Used by catalog proposals and
// AI analysis caching, which touch single fields.
func (s *IncidentService) ApplyInvolvementPatch(incidentID, studentID string, patch func(*models.InvolvedStudent)) (models.Incident, error) {
	incident, ok := s.incidents.Get(incidentID)
	if !ok {
		return models.Incident{}, apperrors.ErrIncidentNotFound
	}
	rel := incident.Involvement(studentID)
	if rel == nil {
		return models.Incident{}, apperrors.ErrInvolvementNotFound
	}

	patch(rel)
	incident.Status = models.DeriveStatus(incident.InvolvedStudents)
	s.incidents.Update(incident)
	return incident, nil
}

// RemoveInvolvement detaches a student from an incident. The status is
// intentionally not re-derived here: removing the last undecided
// suspect must not flip an open file to decided behind the operator's
// back.
func (s *IncidentService) RemoveInvolvement(incidentID, studentID string) (models.Incident, error) {
	incident, ok := s.incidents.Get(incidentID)
	if !ok {
		return models.Incident{}, apperrors.ErrIncidentNotFound
	}
	if incident.Involvement(studentID) == nil {
		return models.Incident{}, apperrors.ErrInvolvementNotFound
	}

	kept := incident.InvolvedStudents[:0]
	for _, rel := range incident.InvolvedStudents {
		if rel.StudentID != studentID {
			kept = append(kept, rel)
		}
	}
	incident.InvolvedStudents = kept
	s.incidents.Update(incident)
	return incident, nil
}

// SeedCodeCounter floors the per-year counter at the highest sequence
// already present on disk, so restarts never reissue a code.
func (s *IncidentService) SeedCodeCounter() {
	year := s.now().Year()
	s.settings.SeedIncidentSeq(year, s.incidents.MaxSequence(year))
}
