package repositories

import (
	"sync"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
)

const studentsRecord = "students.json"

// StudentRepository owns the student collection. The in-memory slice is
// authoritative; every mutation rewrites the whole record on disk.
type StudentRepository struct {
	mu       sync.RWMutex
	store    *jsonstore.Store
	students []models.Student
}

// NewStudentRepository loads the student record from the store.
func NewStudentRepository(store *jsonstore.Store) (*StudentRepository, error) {
	r := &StudentRepository{store: store, students: []models.Student{}}
	if _, err := store.Load(studentsRecord, &r.students); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns a copy of all students.
func (r *StudentRepository) List() []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Get returns the student with the given id.
func (r *StudentRepository) Get(id string) (models.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

// NumberExists reports whether a live student already carries the school
// number, optionally excluding one record (for updates).
func (r *StudentRepository) NumberExists(number, excludeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.Number == number && s.ID != excludeID {
			return true
		}
	}
	return false
}

// Upsert inserts or replaces a student by id and persists the collection.
func (r *StudentRepository) Upsert(student models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == student.ID {
			r.students[i] = student
			r.store.Save(studentsRecord, r.students)
			return
		}
	}
	r.students = append(r.students, student)
	r.store.Save(studentsRecord, r.students)
}

// AddBatch appends imported students in one persisted write.
func (r *StudentRepository) AddBatch(students []models.Student) {
	if len(students) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, students...)
	r.store.Save(studentsRecord, r.students)
}

// Remove deletes the student by id. Incident references are left
// dangling on purpose; readers substitute a placeholder.
func (r *StudentRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			r.store.Save(studentsRecord, r.students)
			return true
		}
	}
	return false
}
