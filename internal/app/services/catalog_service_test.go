package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
)

func TestCatalogDatasetFollowsInstitutionType(t *testing.T) {
	svc := newTestServices(t)

	// Default institution profile is lise.
	assert.Equal(t, "164", svc.Catalog.Dataset().ArticleRoot)

	inst := svc.Settings.Institution()
	inst.Type = models.InstitutionTypeMiddle
	svc.Settings.SaveInstitution(inst)
	assert.Equal(t, "55", svc.Catalog.Dataset().ArticleRoot)
}

func TestCatalogApplyRecordsProposal(t *testing.T) {
	svc := newTestServices(t)
	svc.Catalog.now = fixedClock(2025)

	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")
	_, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)

	updated, err := svc.Catalog.Apply(dto.ApplyCatalogRequest{
		IncidentID:  incident.ID,
		StudentID:   student.ID,
		CategoryKey: "kinama",
		ArticleCode: "a",
	})
	require.NoError(t, err)

	rel := updated.Involvement(student.ID)
	require.NotNil(t, rel)
	assert.Equal(t, "KINAMA", rel.Decision)
	assert.Equal(t, "Madde 164/2-a) Okulu, okul eşyasını ve çevresini kirletmek", rel.DecisionReason)
	assert.Equal(t, "2025-03-15", rel.DecisionDate)
	// A proposal never carries a decision number.
	assert.Empty(t, rel.DecisionNo)
	// A non-empty decision on the only suspect closes the file.
	assert.Equal(t, models.StatusDecided, updated.Status)
}

func TestCatalogApplyMiddleSchoolCitation(t *testing.T) {
	svc := newTestServices(t)
	svc.Catalog.now = fixedClock(2025)

	inst := svc.Settings.Institution()
	inst.Type = models.InstitutionTypeMiddle
	svc.Settings.SaveInstitution(inst)

	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")
	_, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)

	updated, err := svc.Catalog.Apply(dto.ApplyCatalogRequest{
		IncidentID:  incident.ID,
		StudentID:   student.ID,
		CategoryKey: "uyarma",
		ArticleCode: "1",
	})
	require.NoError(t, err)

	rel := updated.Involvement(student.ID)
	assert.Equal(t, "UYARMA", rel.Decision)
	assert.Contains(t, rel.DecisionReason, "Madde 55/1-1)")
}

func TestCatalogApplyUnknownKeys(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Catalog.Apply(dto.ApplyCatalogRequest{
		IncidentID: "x", StudentID: "y", CategoryKey: "bilinmeyen", ArticleCode: "a",
	})
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	_, err = svc.Catalog.Apply(dto.ApplyCatalogRequest{
		IncidentID: "x", StudentID: "y", CategoryKey: "kinama", ArticleCode: "zz",
	})
	assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

func TestCatalogApplySuspectOnly(t *testing.T) {
	svc := newTestServices(t)

	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")
	_, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleWitness,
	})
	require.NoError(t, err)

	_, err = svc.Catalog.Apply(dto.ApplyCatalogRequest{
		IncidentID:  incident.ID,
		StudentID:   student.ID,
		CategoryKey: "kinama",
		ArticleCode: "a",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
