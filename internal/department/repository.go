package department

import (
	"errors"

	"RequestPortal/internal/store"
)

// ErrNotFound is returned when a referenced department does not exist.
var ErrNotFound = errors.New("department not found")

// DepartmentRepository handles department reads and writes against the store
// document.
type DepartmentRepository struct {
	store *store.Store
}

// NewDepartmentRepository creates a new repository over the portal store.
func NewDepartmentRepository(s *store.Store) *DepartmentRepository {
	return &DepartmentRepository{store: s}
}

// All returns a copy of the departments collection.
func (r *DepartmentRepository) All() []store.Department {
	var out []store.Department
	r.store.View(func(d *store.Document) {
		out = append([]store.Department{}, d.Departments...)
	})
	return out
}

// FindByID returns the department with the given id.
func (r *DepartmentRepository) FindByID(id string) (store.Department, bool) {
	var found store.Department
	var ok bool
	r.store.View(func(d *store.Document) {
		for _, dept := range d.Departments {
			if dept.ID == id {
				found = dept
				ok = true
				return
			}
		}
	})
	return found, ok
}

// Insert appends a new department and persists the document.
func (r *DepartmentRepository) Insert(dept store.Department) error {
	return r.store.Mutate(func(d *store.Document) error {
		d.Departments = append(d.Departments, dept)
		return nil
	})
}

// Update mutates the stored department in place and persists the document.
func (r *DepartmentRepository) Update(id string, fn func(dept *store.Department)) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Departments {
			if d.Departments[i].ID == id {
				fn(&d.Departments[i])
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the department. Employee records keep their deptId; a
// dangling reference renders as a blank department cell.
func (r *DepartmentRepository) Delete(id string) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Departments {
			if d.Departments[i].ID == id {
				d.Departments = append(d.Departments[:i], d.Departments[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
