package repositories

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
)

const incidentsRecord = "incidents.json"

var incidentCodeRe = regexp.MustCompile(`^OLAY(\d{4})-(\d+)$`)

// IncidentRepository owns the incident collection.
type IncidentRepository struct {
	mu        sync.RWMutex
	store     *jsonstore.Store
	incidents []models.Incident
}

// NewIncidentRepository loads the incident record from the store.
func NewIncidentRepository(store *jsonstore.Store) (*IncidentRepository, error) {
	r := &IncidentRepository{store: store, incidents: []models.Incident{}}
	if _, err := store.Load(incidentsRecord, &r.incidents); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns a copy of all incidents, newest first.
func (r *IncidentRepository) List() []models.Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Incident, len(r.incidents))
	for i, inc := range r.incidents {
		out[i] = cloneIncident(inc)
	}
	return out
}

// Get returns the incident with the given id. The involvement slice is
// cloned so callers can mutate it before calling Update.
func (r *IncidentRepository) Get(id string) (models.Incident, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inc := range r.incidents {
		if inc.ID == id {
			return cloneIncident(inc), true
		}
	}
	return models.Incident{}, false
}

func cloneIncident(inc models.Incident) models.Incident {
	out := inc
	out.InvolvedStudents = make([]models.InvolvedStudent, len(inc.InvolvedStudents))
	copy(out.InvolvedStudents, inc.InvolvedStudents)
	return out
}

// Add prepends a new incident and persists the collection.
func (r *IncidentRepository) Add(incident models.Incident) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incidents = append([]models.Incident{incident}, r.incidents...)
	r.store.Save(incidentsRecord, r.incidents)
}

// Update replaces an incident by id and persists the collection.
func (r *IncidentRepository) Update(incident models.Incident) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inc := range r.incidents {
		if inc.ID == incident.ID {
			r.incidents[i] = incident
			r.store.Save(incidentsRecord, r.incidents)
			return true
		}
	}
	return false
}

// Remove deletes the incident by id.
func (r *IncidentRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inc := range r.incidents {
		if inc.ID == id {
			r.incidents = append(r.incidents[:i], r.incidents[i+1:]...)
			r.store.Save(incidentsRecord, r.incidents)
			return true
		}
	}
	return false
}

// MaxSequence returns the highest code sequence stored for the given
// year. Used to seed the code counter so deleted codes are never reused.
func (r *IncidentRepository) MaxSequence(year int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	max := 0
	for _, inc := range r.incidents {
		m := incidentCodeRe.FindStringSubmatch(inc.Code)
		if m == nil {
			continue
		}
		y, _ := strconv.Atoi(m[1])
		if y != year {
			continue
		}
		seq, _ := strconv.Atoi(m[2])
		if seq > max {
			max = seq
		}
	}
	return max
}
