package repositories

import (
	"sync"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
)

const settingsRecord = "settings.json"

// SettingsRepository owns the settings bundle: institution identity,
// board seats, the AI API key and the incident code counters.
type SettingsRepository struct {
	mu       sync.RWMutex
	store    *jsonstore.Store
	settings models.Settings
}

// NewSettingsRepository loads the settings bundle, seeding defaults on
// first run.
func NewSettingsRepository(store *jsonstore.Store) (*SettingsRepository, error) {
	r := &SettingsRepository{store: store}
	found, err := r.store.Load(settingsRecord, &r.settings)
	if err != nil {
		return nil, err
	}
	if !found {
		r.settings = models.Settings{
			Institution:  models.Institution{Type: "Lise", Year: "2025-2026"},
			BoardMembers: models.DefaultBoardMembers(),
		}
	}
	if r.settings.LastIncidentSeq == nil {
		r.settings.LastIncidentSeq = map[int]int{}
	}
	return r, nil
}

// Institution returns the institution configuration.
func (r *SettingsRepository) Institution() models.Institution {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Institution
}

// SaveInstitution replaces the institution configuration.
func (r *SettingsRepository) SaveInstitution(inst models.Institution) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.Institution = inst
	r.store.Save(settingsRecord, r.settings)
}

// BoardMembers returns a copy of the board seat list.
func (r *SettingsRepository) BoardMembers() []models.BoardMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BoardMember, len(r.settings.BoardMembers))
	copy(out, r.settings.BoardMembers)
	return out
}

// SaveBoardMembers replaces the board seat list.
func (r *SettingsRepository) SaveBoardMembers(members []models.BoardMember) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.BoardMembers = members
	r.store.Save(settingsRecord, r.settings)
}

// APIKey returns the stored AI API key.
func (r *SettingsRepository) APIKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.APIKey
}

// SaveAPIKey replaces the stored AI API key.
func (r *SettingsRepository) SaveAPIKey(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.APIKey = key
	r.store.Save(settingsRecord, r.settings)
}

// SeedIncidentSeq raises the code counter floor for a year, typically
// from the highest code found in the incident record at startup.
func (r *SettingsRepository) SeedIncidentSeq(year, floor int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings.LastIncidentSeq[year] < floor {
		r.settings.LastIncidentSeq[year] = floor
		r.store.Save(settingsRecord, r.settings)
	}
}

// NextIncidentSeq hands out the next code sequence for a year. Sequences
// are strictly increasing and survive deletions.
func (r *SettingsRepository) NextIncidentSeq(year int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.LastIncidentSeq[year]++
	seq := r.settings.LastIncidentSeq[year]
	r.store.Save(settingsRecord, r.settings)
	return seq
}
