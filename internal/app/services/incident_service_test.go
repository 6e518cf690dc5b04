package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
)

func createIncident(t *testing.T, svc *Services, title string) models.Incident {
	t.Helper()
	incident, err := svc.Incident.Create(dto.CreateIncidentRequest{
		Title: title,
		Date:  "2025-03-10",
	})
	require.NoError(t, err)
	return incident
}

func createStudent(t *testing.T, svc *Services, number, name string) models.Student {
	t.Helper()
	student, err := svc.Student.Create(models.Student{Number: number, Name: name, Grade: "9-A"})
	require.NoError(t, err)
	return student
}

func TestIncidentCreateAssignsCode(t *testing.T) {
	svc := newTestServices(t)
	svc.Incident.now = fixedClock(2025)

	first := createIncident(t, svc, "Kavga")
	second := createIncident(t, svc, "Devamsızlık")

	assert.Equal(t, "OLAY2025-001", first.Code)
	assert.Equal(t, "OLAY2025-002", second.Code)
}

func TestIncidentCodesSurviveDeletion(t *testing.T) {
	svc := newTestServices(t)
	svc.Incident.now = fixedClock(2025)

	first := createIncident(t, svc, "Kavga")
	require.NoError(t, svc.Incident.Delete(first.ID))

	// The burned sequence is never reissued.
	second := createIncident(t, svc, "Kavga")
	assert.Equal(t, "OLAY2025-002", second.Code)
}

func TestIncidentCodeCounterSeeding(t *testing.T) {
	svc := newTestServices(t)
	svc.Incident.now = fixedClock(2025)

	for i := 0; i < 3; i++ {
		createIncident(t, svc, fmt.Sprintf("Olay %d", i))
	}

	// Seeding against existing records never lowers the counter.
	svc.Incident.SeedCodeCounter()
	next := createIncident(t, svc, "Sonraki")
	assert.Equal(t, "OLAY2025-004", next.Code)
}

func TestIncidentCreateRequiresTitle(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Incident.Create(dto.CreateIncidentRequest{Title: "   ", Date: "2025-03-10"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestIncidentStatusDerivation(t *testing.T) {
	svc := newTestServices(t)
	student := createStudent(t, svc, "101", "Ali Veli")

	incident := createIncident(t, svc, "Kavga")
	assert.Equal(t, models.StatusPending, incident.Status)

	incident, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID,
		Role:      models.RoleSuspect,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInvestigating, incident.Status)

	incident, err = svc.Incident.UpdateInvolvement(incident.ID, student.ID, dto.UpdateInvolvementRequest{
		Decision:     "KINAMA",
		DecisionNo:   "2025/7",
		DecisionDate: "2025-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDecided, incident.Status)
}

func TestIncidentWitnessDoesNotBlockDecision(t *testing.T) {
	svc := newTestServices(t)
	witness := createStudent(t, svc, "102", "Ayşe Kaya")

	incident := createIncident(t, svc, "Kavga")
	incident, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: witness.ID,
		Role:      models.RoleWitness,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDecided, incident.Status)
}

func TestIncidentAddInvolvementRejectsDuplicate(t *testing.T) {
	svc := newTestServices(t)
	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")

	_, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)

	_, err = svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleWitness,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyInvolved)
}

func TestIncidentAddInvolvementRejectsUnknowns(t *testing.T) {
	svc := newTestServices(t)
	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")

	_, err := svc.Incident.AddInvolvement("missing", dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	assert.ErrorIs(t, err, apperrors.ErrIncidentNotFound)

	_, err = svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: "missing", Role: models.RoleSuspect,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: "bystander",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestIncidentRemoveInvolvementKeepsStatus(t *testing.T) {
	svc := newTestServices(t)
	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")

	incident, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusInvestigating, incident.Status)

	// Removing the last undecided suspect must not silently close the
	// file.
	incident, err = svc.Incident.RemoveInvolvement(incident.ID, student.ID)
	require.NoError(t, err)
	assert.Empty(t, incident.InvolvedStudents)
	assert.Equal(t, models.StatusInvestigating, incident.Status)
}

func TestIncidentUpdateKeepsCodeAndStatus(t *testing.T) {
	svc := newTestServices(t)
	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")

	incident, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)

	updated, err := svc.Incident.Update(incident.ID, dto.UpdateIncidentRequest{
		Title: "Kavga (güncellendi)",
		Date:  "2025-03-11",
	})
	require.NoError(t, err)
	assert.Equal(t, incident.Code, updated.Code)
	assert.Equal(t, models.StatusInvestigating, updated.Status)
	assert.Len(t, updated.InvolvedStudents, 1)
}

func TestIncidentGetReturnsCopy(t *testing.T) {
	svc := newTestServices(t)
	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")

	_, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)

	got, err := svc.Incident.Get(incident.ID)
	require.NoError(t, err)
	got.Involvement(student.ID).Decision = "KINAMA"

	// Mutating a returned copy must not leak into the store.
	fresh, err := svc.Incident.Get(incident.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Involvement(student.ID).Decision)
	assert.Equal(t, models.StatusInvestigating, fresh.Status)
}
