package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
)

func TestStudentCreateAssignsID(t *testing.T) {
	svc := newTestServices(t)

	created, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli", Grade: "9-A"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Student.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", got.Name)
}

func TestStudentCreateRejectsDuplicateNumber(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli"})
	require.NoError(t, err)

	_, err = svc.Student.Create(models.Student{Number: "101", Name: "Ayşe Kaya"})
	assert.ErrorIs(t, err, apperrors.ErrNumberExists)
}

func TestStudentCreateValidation(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Student.Create(models.Student{Number: "  ", Name: "Ali Veli"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Student.Create(models.Student{Number: "101", Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentCreateDefaultsGrade(t *testing.T) {
	svc := newTestServices(t)

	created, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli"})
	require.NoError(t, err)
	assert.Equal(t, "Belirtilmedi", created.Grade)
}

func TestStudentUpdateKeepsOwnNumber(t *testing.T) {
	svc := newTestServices(t)

	created, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli"})
	require.NoError(t, err)

	// Same number on the same student is not a collision.
	updated, err := svc.Student.Update(created.ID, models.Student{Number: "101", Name: "Ali Veli", Grade: "10-B"})
	require.NoError(t, err)
	assert.Equal(t, "10-B", updated.Grade)
	assert.Equal(t, created.ID, updated.ID)
}

func TestStudentUpdateUnknown(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Student.Update("missing", models.Student{Number: "1", Name: "X"})
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestStudentResolveDeleted(t *testing.T) {
	svc := newTestServices(t)

	created, err := svc.Student.Create(models.Student{Number: "101", Name: "Ali Veli"})
	require.NoError(t, err)
	require.NoError(t, svc.Student.Delete(created.ID))

	resolved := svc.Student.Resolve(created.ID)
	assert.Equal(t, models.DeletedStudentName, resolved.Name)
	assert.Equal(t, "-", resolved.Grade)
}
