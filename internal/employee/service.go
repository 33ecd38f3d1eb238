package employee

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/store"
)

// ErrUnknownAccount is returned when an employee email matches no account.
var ErrUnknownAccount = errors.New("email does not match any account")

// EmployeeRequest carries the admin create/update form for employees.
type EmployeeRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Position   string `json:"position" validate:"required"`
	DeptID     string `json:"deptId"`
	HireDate   string `json:"hireDate"`
}

// EmployeeService implements the employee admin operations. Employee emails
// are checked against the accounts collection, not enforced by the store.
type EmployeeService struct {
	repo     *EmployeeRepository
	accounts *auth.AccountRepository
	validate *validator.Validate

	// Id of the employee loaded into the edit form, "" when the form
	// creates instead of updates.
	editing string
}

// NewEmployeeService creates the employee service.
func NewEmployeeService(repo *EmployeeRepository, accounts *auth.AccountRepository) *EmployeeService {
	return &EmployeeService{repo: repo, accounts: accounts, validate: validator.New()}
}

// List returns all employees.
func (s *EmployeeService) List() []store.Employee {
	return s.repo.All()
}

func (s *EmployeeService) check(req *EmployeeRequest) error {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Position = strings.TrimSpace(req.Position)
	if err := s.validate.Struct(*req); err != nil {
		return errors.New("employee id, email and position are required")
	}
	if !s.accounts.EmailExists(req.Email) {
		return ErrUnknownAccount
	}
	return nil
}

// Create adds an employee.
func (s *EmployeeService) Create(req EmployeeRequest) (store.Employee, error) {
	if err := s.check(&req); err != nil {
		return store.Employee{}, err
	}
	emp := store.Employee{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
		Position:   req.Position,
		DeptID:     req.DeptID,
		HireDate:   req.HireDate,
	}
	if err := s.repo.Insert(emp); err != nil {
		return store.Employee{}, err
	}
	return emp, nil
}

// Update edits an existing employee.
func (s *EmployeeService) Update(id string, req EmployeeRequest) error {
	if err := s.check(&req); err != nil {
		return err
	}
	return s.repo.Update(id, func(e *store.Employee) {
		e.EmployeeID = req.EmployeeID
		e.Email = req.Email
		e.Position = req.Position
		e.DeptID = req.DeptID
		e.HireDate = req.HireDate
	})
}

// Delete removes an employee.
func (s *EmployeeService) Delete(id string) error {
	if s.editing == id {
		s.editing = ""
	}
	return s.repo.Delete(id)
}

// BeginEdit loads an employee into the edit form.
func (s *EmployeeService) BeginEdit(id string) (store.Employee, error) {
	emp, ok := s.repo.FindByID(id)
	if !ok {
		return store.Employee{}, ErrNotFound
	}
	s.editing = id
	return emp, nil
}

// CancelEdit clears the edit form.
func (s *EmployeeService) CancelEdit() {
	s.editing = ""
}

// Submit updates the employee being edited, or creates a new one when no
// edit is in progress, then clears the edit state.
func (s *EmployeeService) Submit(req EmployeeRequest) error {
	if s.editing == "" {
		_, err := s.Create(req)
		return err
	}
	id := s.editing
	s.editing = ""
	return s.Update(id, req)
}
