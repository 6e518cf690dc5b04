package repositories

import (
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
)

// Repositories bundles all entity repositories over one store.
type Repositories struct {
	Students  *StudentRepository
	Incidents *IncidentRepository
	Settings  *SettingsRepository
}

// NewRepositories loads every persisted record and wires the
// repositories together.
func NewRepositories(store *jsonstore.Store) (*Repositories, error) {
	students, err := NewStudentRepository(store)
	if err != nil {
		return nil, err
	}
	incidents, err := NewIncidentRepository(store)
	if err != nil {
		return nil, err
	}
	settings, err := NewSettingsRepository(store)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Students:  students,
		Incidents: incidents,
		Settings:  settings,
	}, nil
}
