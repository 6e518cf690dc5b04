package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
)

func TestStatsEmptyStore(t *testing.T) {
	svc := newTestServices(t)

	stats := svc.Stats.Overview()
	assert.Zero(t, stats.TotalIncidents)
	assert.Zero(t, stats.PenaltyRate)
	assert.Empty(t, stats.TopPenalties)
	assert.Empty(t, stats.GradeDistribution)
}

func TestStatsOverview(t *testing.T) {
	svc := newTestServices(t)

	ali, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli", Grade: "9-A"})
	require.NoError(t, err)
	ayse, err := svc.Student.Create(models.Student{Number: "102", Name: "Ayşe Kaya", Grade: "10-B"})
	require.NoError(t, err)

	// Decided incident: one penalty, one acquittal.
	first := createIncident(t, svc, "Kavga")
	_, err = svc.Incident.AddInvolvement(first.ID, dto.AddInvolvementRequest{StudentID: ali.ID, Role: models.RoleSuspect})
	require.NoError(t, err)
	_, err = svc.Incident.AddInvolvement(first.ID, dto.AddInvolvementRequest{StudentID: ayse.ID, Role: models.RoleSuspect})
	require.NoError(t, err)
	_, err = svc.Incident.UpdateInvolvement(first.ID, ali.ID, dto.UpdateInvolvementRequest{Decision: "KINAMA"})
	require.NoError(t, err)
	_, err = svc.Incident.UpdateInvolvement(first.ID, ayse.ID, dto.UpdateInvolvementRequest{Decision: "CEZA VERİLMESİNE YER OLMADIĞINA"})
	require.NoError(t, err)

	// Open incident, no decisions yet.
	second := createIncident(t, svc, "Kavga")
	_, err = svc.Incident.AddInvolvement(second.ID, dto.AddInvolvementRequest{StudentID: ali.ID, Role: models.RoleSuspect})
	require.NoError(t, err)

	third := createIncident(t, svc, "Devamsızlık")
	_, err = svc.Incident.AddInvolvement(third.ID, dto.AddInvolvementRequest{StudentID: ayse.ID, Role: models.RoleWitness})
	require.NoError(t, err)

	stats := svc.Stats.Overview()

	assert.Equal(t, 3, stats.TotalIncidents)
	// The witness-only incident derives as decided.
	assert.Equal(t, 2, stats.DecidedIncidents)
	assert.Equal(t, 1, stats.PendingIncidents)
	// One of the two recorded decisions is a penalty.
	assert.Equal(t, 50, stats.PenaltyRate)
	assert.Equal(t, 1, stats.PenaltyIncidentCount)

	require.Len(t, stats.TopPenalties, 2)
	assert.Equal(t, dto.PenaltyCount{Title: "Kavga", Count: 2}, stats.TopPenalties[0])
	assert.Equal(t, dto.PenaltyCount{Title: "Devamsızlık", Count: 1}, stats.TopPenalties[1])

	// Involvement rows, not distinct students: Ali appears twice.
	require.Len(t, stats.GradeDistribution, 2)
	assert.Equal(t, dto.GradeCount{Grade: "10-B", Count: 2}, stats.GradeDistribution[0])
	assert.Equal(t, dto.GradeCount{Grade: "9-A", Count: 2}, stats.GradeDistribution[1])
}

func TestStatsSkipsDeletedStudentGrades(t *testing.T) {
	svc := newTestServices(t)

	ali, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli", Grade: "9-A"})
	require.NoError(t, err)

	incident := createIncident(t, svc, "Kavga")
	_, err = svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{StudentID: ali.ID, Role: models.RoleSuspect})
	require.NoError(t, err)
	require.NoError(t, svc.Student.Delete(ali.ID))

	stats := svc.Stats.Overview()
	assert.Empty(t, stats.GradeDistribution)
}

func TestStatsTopPenaltiesCapped(t *testing.T) {
	svc := newTestServices(t)

	titles := []string{"Kavga", "Devamsızlık", "Kopya", "Hakaret", "Sigara", "Zorbalık"}
	for _, title := range titles {
		createIncident(t, svc, title)
	}

	stats := svc.Stats.Overview()
	assert.Len(t, stats.TopPenalties, 5)
}
