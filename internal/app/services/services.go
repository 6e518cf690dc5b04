package services

import (
	"github.com/oguzk/disiplintakip/internal/app/document"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
)

// Services bundles every service instance for dependency injection.
type Services struct {
	Student  *StudentService
	Incident *IncidentService
	Catalog  *CatalogService
	Stats    *StatsService
	Settings *SettingsService
	Document *DocumentService
	AI       *AIService
}

// New wires the full service layer on top of the repositories. aiKey is
// the process-level fallback Gemini key.
func New(repos *repositories.Repositories, aiKey string) *Services {
	student := NewStudentService(repos.Students)
	incident := NewIncidentService(repos.Incidents, repos.Students, repos.Settings)
	return &Services{
		Student:  student,
		Incident: incident,
		Catalog:  NewCatalogService(incident, repos.Settings),
		Stats:    NewStatsService(repos.Incidents, repos.Students),
		Settings: NewSettingsService(repos.Settings),
		Document: NewDocumentService(document.NewEngine(), student, incident, repos.Settings),
		AI:       NewAIService(incident, student, repos.Settings, aiKey),
	}
}
