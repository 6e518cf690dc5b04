package repositories

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
)

func newStore(t *testing.T, dir string) *jsonstore.Store {
	t.Helper()
	store, err := jsonstore.Open(dir, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func TestStudentRepositoryPersistence(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewStudentRepository(newStore(t, dir))
	require.NoError(t, err)
	repo.Upsert(models.Student{ID: "s1", Number: "101", Name: "Ali Veli"})
	repo.Upsert(models.Student{ID: "s2", Number: "102", Name: "Ayşe Kaya"})
	require.True(t, repo.Remove("s2"))

	// Reopen from the same directory.
	reloaded, err := NewStudentRepository(newStore(t, dir))
	require.NoError(t, err)
	students := reloaded.List()
	require.Len(t, students, 1)
	assert.Equal(t, "Ali Veli", students[0].Name)
}

func TestStudentNumberExists(t *testing.T) {
	repo, err := NewStudentRepository(newStore(t, t.TempDir()))
	require.NoError(t, err)
	repo.Upsert(models.Student{ID: "s1", Number: "101", Name: "Ali Veli"})

	assert.True(t, repo.NumberExists("101", ""))
	assert.False(t, repo.NumberExists("101", "s1"))
	assert.False(t, repo.NumberExists("999", ""))
}

func TestIncidentRepositoryNewestFirst(t *testing.T) {
	repo, err := NewIncidentRepository(newStore(t, t.TempDir()))
	require.NoError(t, err)

	repo.Add(models.Incident{ID: "i1", Code: "OLAY2025-001", Title: "İlk"})
	repo.Add(models.Incident{ID: "i2", Code: "OLAY2025-002", Title: "İkinci"})

	incidents := repo.List()
	require.Len(t, incidents, 2)
	assert.Equal(t, "i2", incidents[0].ID)
}

func TestIncidentMaxSequence(t *testing.T) {
	repo, err := NewIncidentRepository(newStore(t, t.TempDir()))
	require.NoError(t, err)

	repo.Add(models.Incident{ID: "i1", Code: "OLAY2025-003"})
	repo.Add(models.Incident{ID: "i2", Code: "OLAY2025-017"})
	repo.Add(models.Incident{ID: "i3", Code: "OLAY2024-099"})
	repo.Add(models.Incident{ID: "i4", Code: "eski-format"})

	assert.Equal(t, 17, repo.MaxSequence(2025))
	assert.Equal(t, 99, repo.MaxSequence(2024))
	assert.Zero(t, repo.MaxSequence(2023))
}

func TestIncidentGetClonesInvolvements(t *testing.T) {
	repo, err := NewIncidentRepository(newStore(t, t.TempDir()))
	require.NoError(t, err)

	repo.Add(models.Incident{ID: "i1", Code: "OLAY2025-001", InvolvedStudents: []models.InvolvedStudent{
		{StudentID: "s1", Role: models.RoleSuspect},
	}})

	got, ok := repo.Get("i1")
	require.True(t, ok)
	got.InvolvedStudents[0].Decision = "KINAMA"

	fresh, ok := repo.Get("i1")
	require.True(t, ok)
	assert.Empty(t, fresh.InvolvedStudents[0].Decision)
}

func TestSettingsRepositoryDefaults(t *testing.T) {
	repo, err := NewSettingsRepository(newStore(t, t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "Lise", repo.Institution().Type)
	assert.Len(t, repo.BoardMembers(), 5)
	assert.Empty(t, repo.APIKey())
}

func TestSettingsIncidentSeqPersistence(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewSettingsRepository(newStore(t, dir))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.NextIncidentSeq(2025))
	assert.Equal(t, 2, repo.NextIncidentSeq(2025))
	assert.Equal(t, 1, repo.NextIncidentSeq(2026))

	reloaded, err := NewSettingsRepository(newStore(t, dir))
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.NextIncidentSeq(2025))
}

func TestSettingsSeedIncidentSeqOnlyRaises(t *testing.T) {
	repo, err := NewSettingsRepository(newStore(t, t.TempDir()))
	require.NoError(t, err)

	repo.SeedIncidentSeq(2025, 5)
	// A lower floor never rolls the counter back.
	repo.SeedIncidentSeq(2025, 2)
	assert.Equal(t, 6, repo.NextIncidentSeq(2025))
}
