package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/eokul"
	"github.com/oguzk/disiplintakip/internal/pkg/logger"
)

// StudentService handles the student roster and e-Okul imports.
type StudentService struct {
	students *repositories.StudentRepository
}

// NewStudentService creates a new student service instance.
func NewStudentService(students *repositories.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// List returns all students.
func (s *StudentService) List() []models.Student {
	return s.students.List()
}

// Get returns one student by id.
func (s *StudentService) Get(id string) (models.Student, error) {
	student, ok := s.students.Get(id)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Create adds a manually entered student. The school number must be
// unique among live students.
func (s *StudentService) Create(student models.Student) (models.Student, error) {
	if err := validateStudent(&student); err != nil {
		return models.Student{}, err
	}
	if s.students.NumberExists(student.Number, "") {
		return models.Student{}, apperrors.ErrNumberExists
	}
	student.ID = uuid.NewString()
	s.students.Upsert(student)
	logger.Info().Str("studentId", student.ID).Str("number", student.Number).Msg("Student created")
	return student, nil
}

// Update replaces a student record. Number uniqueness is checked
// against everyone but the student itself.
func (s *StudentService) Update(id string, student models.Student) (models.Student, error) {
	if _, ok := s.students.Get(id); !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	if err := validateStudent(&student); err != nil {
		return models.Student{}, err
	}
	if s.students.NumberExists(student.Number, id) {
		return models.Student{}, apperrors.ErrNumberExists
	}
	student.ID = id
	s.students.Upsert(student)
	return student, nil
}

// Delete removes a student. Incident involvements referencing the
// student are left in place and resolve to a placeholder.
func (s *StudentService) Delete(id string) error {
	if !s.students.Remove(id) {
		return apperrors.ErrStudentNotFound
	}
	logger.Info().Str("studentId", id).Msg("Student deleted")
	return nil
}

// Resolve returns the student for an involvement reference, or the
// deleted-student placeholder when the record is gone.
func (s *StudentService) Resolve(id string) models.Student {
	if student, ok := s.students.Get(id); ok {
		return student
	}
	return models.DeletedStudentPlaceholder(id)
}

// ImportWorkbook parses an e-Okul xlsx export and adds every new
// student card found in it. Cards whose school number is already taken
// are skipped silently; a workbook with no usable cards is an error.
func (s *StudentService) ImportWorkbook(r io.Reader) (int, error) {
	rows, err := eokul.ReadSheet(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrBadRequest, err)
	}

	records := eokul.Parse(rows, func(number string) bool {
		return s.students.NumberExists(number, "")
	})
	if len(records) == 0 {
		return 0, apperrors.ErrNoStudentBlocks
	}

	batch := make([]models.Student, 0, len(records))
	for _, rec := range records {
		batch = append(batch, models.Student{
			ID:                 uuid.NewString(),
			Number:             rec.Number,
			Name:               rec.Name,
			Grade:              rec.Grade,
			TCNo:               rec.TCNo,
			FatherName:         rec.FatherName,
			MotherName:         rec.MotherName,
			BirthPlaceDate:     rec.BirthPlaceDate,
			Province:           rec.Province,
			District:           rec.District,
			Neighborhood:       rec.Neighborhood,
			VolumeNo:           rec.VolumeNo,
			FamilyOrderNo:      rec.FamilyOrderNo,
			OrderNo:            rec.OrderNo,
			RegistrationType:   rec.RegistrationType,
			PreviousSchoolInfo: rec.PreviousSchoolInfo,
			RegistrationDate:   rec.RegistrationDate,
			ParentName:         rec.ParentName,
			ExamStatus:         rec.ExamStatus,
			BoardingStatus:     rec.BoardingStatus,
			ScholarshipStatus:  rec.ScholarshipStatus,
			Address:            rec.Address,
		})
	}
	s.students.AddBatch(batch)
	logger.Info().Int("count", len(batch)).Msg("Students imported from e-Okul workbook")
	return len(batch), nil
}

func validateStudent(student *models.Student) error {
	student.Number = strings.TrimSpace(student.Number)
	student.Name = strings.TrimSpace(student.Name)
	if student.Number == "" {
		return apperrors.NewValidationError("okul numarası boş olamaz")
	}
	if student.Name == "" {
		return apperrors.NewValidationError("öğrenci adı boş olamaz")
	}
	if student.Grade == "" {
		student.Grade = eokul.DefaultGrade
	}
	return nil
}
