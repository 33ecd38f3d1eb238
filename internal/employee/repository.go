package employee

import (
	"errors"

	"RequestPortal/internal/store"
)

// ErrNotFound is returned when a referenced employee does not exist.
var ErrNotFound = errors.New("employee not found")

// EmployeeRepository handles employee reads and writes against the store
// document.
type EmployeeRepository struct {
	store *store.Store
}

// NewEmployeeRepository creates a new repository over the portal store.
func NewEmployeeRepository(s *store.Store) *EmployeeRepository {
	return &EmployeeRepository{store: s}
}

// All returns a copy of the employees collection.
func (r *EmployeeRepository) All() []store.Employee {
	var out []store.Employee
	r.store.View(func(d *store.Document) {
		out = append([]store.Employee{}, d.Employees...)
	})
	return out
}

// FindByID returns the employee with the given id.
func (r *EmployeeRepository) FindByID(id string) (store.Employee, bool) {
	var found store.Employee
	var ok bool
	r.store.View(func(d *store.Document) {
		for _, e := range d.Employees {
			if e.ID == id {
				found = e
				ok = true
				return
			}
		}
	})
	return found, ok
}

// Insert appends a new employee and persists the document.
func (r *EmployeeRepository) Insert(emp store.Employee) error {
	return r.store.Mutate(func(d *store.Document) error {
		d.Employees = append(d.Employees, emp)
		return nil
	})
}

// Update mutates the stored employee in place and persists the document.
func (r *EmployeeRepository) Update(id string, fn func(e *store.Employee)) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Employees {
			if d.Employees[i].ID == id {
				fn(&d.Employees[i])
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the employee and persists the document.
func (r *EmployeeRepository) Delete(id string) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Employees {
			if d.Employees[i].ID == id {
				d.Employees = append(d.Employees[:i], d.Employees[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
