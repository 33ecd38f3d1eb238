package store

// Roles assignable to an account.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Request statuses.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Account represents a portal login.
type Account struct {
	ID        string `json:"id"`        // Unique identifier
	FirstName string `json:"firstName"` // Account holder's first name
	LastName  string `json:"lastName"`  // Account holder's last name
	Email     string `json:"email"`     // Natural key, unique case-insensitively
	Password  string `json:"password"`  // Stored as entered; this is a demo portal
	Role      string `json:"role"`      // admin or user
	Verified  bool   `json:"verified"`  // Whether the email was verified
}

// Department groups employees.
type Department struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Department name
	Description string `json:"description"` // Short description
}

// Employee is a staff record tied to an account by email.
type Employee struct {
	ID         string `json:"id"`         // Unique identifier
	EmployeeID string `json:"employeeId"` // Human-assigned staff number
	Email      string `json:"email"`      // Must match an existing account email
	Position   string `json:"position"`   // Job title
	DeptID     string `json:"deptId"`     // Department reference; may dangle after delete
	HireDate   string `json:"hireDate"`   // Hire date as entered
}

// RequestItem is one line of an item request.
type RequestItem struct {
	Name string `json:"name"` // Item name
	Qty  int    `json:"qty"`  // Quantity, always > 0
}

// Request is an item request submitted by an authenticated user.
type Request struct {
	ID            string        `json:"id"`            // Unique identifier
	EmployeeEmail string        `json:"employeeEmail"` // Owner; immutable after creation
	Date          string        `json:"date"`          // Submission date
	Type          string        `json:"type"`          // Request category
	Items         []RequestItem `json:"items"`         // Ordered item lines
	Status        string        `json:"status"`        // Pending, Approved or Rejected
}

// Document is the whole portal state persisted as one JSON blob.
type Document struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}
