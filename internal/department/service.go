package department

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"RequestPortal/internal/store"
)

// DepartmentRequest carries the admin create/update form for departments.
type DepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// DepartmentService implements the department admin operations.
type DepartmentService struct {
	repo     *DepartmentRepository
	validate *validator.Validate

	// Id of the department loaded into the edit form, "" when the form
	// creates instead of updates.
	editing string
}

// NewDepartmentService creates the department service.
func NewDepartmentService(repo *DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo, validate: validator.New()}
}

// List returns all departments.
func (s *DepartmentService) List() []store.Department {
	return s.repo.All()
}

// Create adds a department.
func (s *DepartmentService) Create(req DepartmentRequest) (store.Department, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return store.Department{}, errors.New("department name is required")
	}
	dept := store.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Insert(dept); err != nil {
		return store.Department{}, err
	}
	return dept, nil
}

// Update edits an existing department.
func (s *DepartmentService) Update(id string, req DepartmentRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return errors.New("department name is required")
	}
	return s.repo.Update(id, func(dept *store.Department) {
		dept.Name = req.Name
		dept.Description = strings.TrimSpace(req.Description)
	})
}

// Delete removes a department unconditionally; employees referencing it keep
// their deptId.
func (s *DepartmentService) Delete(id string) error {
	if s.editing == id {
		s.editing = ""
	}
	return s.repo.Delete(id)
}

// BeginEdit loads a department into the edit form.
func (s *DepartmentService) BeginEdit(id string) (store.Department, error) {
	dept, ok := s.repo.FindByID(id)
	if !ok {
		return store.Department{}, ErrNotFound
	}
	s.editing = id
	return dept, nil
}

// CancelEdit clears the edit form.
func (s *DepartmentService) CancelEdit() {
	s.editing = ""
}

// Submit updates the department being edited, or creates a new one when no
// edit is in progress, then clears the edit state.
func (s *DepartmentService) Submit(req DepartmentRequest) error {
	if s.editing == "" {
		_, err := s.Create(req)
		return err
	}
	id := s.editing
	s.editing = ""
	return s.Update(id, req)
}
