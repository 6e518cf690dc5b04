package services

import (
	"time"

	"github.com/oguzk/disiplintakip/internal/app/document"
	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
)

// DocumentService renders the printable forms from the template catalog,
// binding them to stored students, incidents and settings.
type DocumentService struct {
	engine    *document.Engine
	students  *StudentService
	incidents *IncidentService
	settings  *repositories.SettingsRepository

	now func() time.Time
}

// NewDocumentService creates a new document service instance.
func NewDocumentService(engine *document.Engine, students *StudentService, incidents *IncidentService, settings *repositories.SettingsRepository) *DocumentService {
	return &DocumentService{
		engine:    engine,
		students:  students,
		incidents: incidents,
		settings:  settings,
		now:       time.Now,
	}
}

// Catalog lists the available document types in print order.
func (s *DocumentService) Catalog() []document.Info {
	return document.Catalog
}

// defaultMeeting is the prefilled board meeting block used when the
// request does not carry one.
func (s *DocumentService) defaultMeeting() models.Meeting {
	return models.Meeting{
		Number:   "2025/1",
		Subject:  "Disiplin Kurulu Toplantısı",
		Date:     s.now().Format("2006-01-02"),
		Time:     "12:30",
		Location: "Müdür Yardımcısı Odası",
		Agenda: []string{
			"Açılış ve yoklama",
			"Kurula sevk edilen disiplin dosyalarının görüşülmesi",
			"Dilek ve temenniler",
			"Kapanış",
		},
	}
}

// Render produces one document. Blank renders skip record binding and
// keep the dotted placeholders; bound renders resolve the selected
// student and incident, substituting the deleted-student placeholder
// for dangling references.
func (s *DocumentService) Render(req dto.RenderDocumentRequest) (document.Result, error) {
	if !document.Valid(req.Type) {
		return document.Result{}, apperrors.ErrUnknownTemplate
	}

	docReq := document.Request{
		Type:        req.Type,
		Blank:       req.Blank,
		Decision:    req.Decision,
		Institution: s.settings.Institution(),
		Board:       s.settings.BoardMembers(),
		Now:         s.now(),
	}
	if req.Meeting != nil {
		docReq.Meeting = *req.Meeting
	} else {
		docReq.Meeting = s.defaultMeeting()
	}

	if !req.Blank {
		if document.NeedsIncident(req.Type) {
			if req.IncidentID == "" {
				return document.Result{}, apperrors.ErrSelectionMissing
			}
			incident, err := s.incidents.Get(req.IncidentID)
			if err != nil {
				return document.Result{}, err
			}
			docReq.Incident = &incident
			if req.StudentID != "" {
				docReq.Involvement = incident.Involvement(req.StudentID)
			}
		}
		if document.NeedsStudent(req.Type) {
			if req.StudentID == "" {
				return document.Result{}, apperrors.ErrSelectionMissing
			}
			student := s.students.Resolve(req.StudentID)
			docReq.Student = &student
		}

		// A decision block left empty by the caller falls back to what
		// the involvement already carries.
		if docReq.Decision == (document.Decision{}) && docReq.Involvement != nil {
			docReq.Decision = document.Decision{
				No:      docReq.Involvement.DecisionNo,
				Date:    docReq.Involvement.DecisionDate,
				Penalty: docReq.Involvement.Decision,
				Reason:  docReq.Involvement.DecisionReason,
				Score:   docReq.Involvement.PenaltyScore,
			}
		}
	}

	return s.engine.Render(docReq)
}
