// Package view projects store and session state into page view models. Every
// function here is a pure projection: it reads its inputs and builds a view
// model, nothing else, so pages can be tested without a rendering surface.
package view

import (
	"fmt"
	"strings"

	"RequestPortal/internal/store"
)

// NavView drives the navigation chrome.
type NavView struct {
	Authenticated bool   `json:"authenticated"`
	IsAdmin       bool   `json:"isAdmin"`
	DisplayName   string `json:"displayName"`
}

// ProfileView is the profile page content.
type ProfileView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RequestRow is one line of the requests table.
type RequestRow struct {
	Date       string `json:"date"`
	Type       string `json:"type"`
	ItemsText  string `json:"itemsText"`
	Status     string `json:"status"`
	BadgeClass string `json:"badgeClass"`
}

// EmployeeRow is one line of the employees table. Department holds the
// resolved department name, blank when the reference dangles.
type EmployeeRow struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	HireDate   string `json:"hireDate"`
}

// AccountRow is one line of the accounts table. Passwords never reach a view.
type AccountRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

// Nav builds the navigation state for the current account, nil when logged
// out.
func Nav(current *store.Account) NavView {
	if current == nil {
		return NavView{DisplayName: "User"}
	}
	name := strings.TrimSpace(current.FirstName + " " + current.LastName)
	if name == "" {
		name = "User"
	}
	return NavView{
		Authenticated: true,
		IsAdmin:       current.Role == store.RoleAdmin,
		DisplayName:   name,
	}
}

// Profile builds the profile page for the current account.
func Profile(current *store.Account) (ProfileView, bool) {
	if current == nil {
		return ProfileView{}, false
	}
	return ProfileView{
		Name:  strings.TrimSpace(current.FirstName + " " + current.LastName),
		Email: current.Email,
		Role:  current.Role,
	}, true
}

// Requests builds the requests table for the current account: only requests
// the account owns, in submission order.
func Requests(doc store.Document, current *store.Account) []RequestRow {
	rows := []RequestRow{}
	if current == nil {
		return rows
	}
	for _, r := range doc.Requests {
		if r.EmployeeEmail != current.Email {
			continue
		}
		rows = append(rows, requestRow(r))
	}
	return rows
}

// AllRequests builds the admin view over every request.
func AllRequests(doc store.Document) []RequestRow {
	rows := make([]RequestRow, 0, len(doc.Requests))
	for _, r := range doc.Requests {
		rows = append(rows, requestRow(r))
	}
	return rows
}

func requestRow(r store.Request) RequestRow {
	parts := make([]string, len(r.Items))
	for i, it := range r.Items {
		parts[i] = fmt.Sprintf("%s (x%d)", it.Name, it.Qty)
	}
	return RequestRow{
		Date:       r.Date,
		Type:       r.Type,
		ItemsText:  strings.Join(parts, ", "),
		Status:     r.Status,
		BadgeClass: StatusBadge(r.Status),
	}
}

// StatusBadge maps a request status to its badge class. Unknown statuses
// render as pending.
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "approved":
		return "bg-success"
	case "rejected":
		return "bg-danger"
	default:
		return "bg-warning text-dark"
	}
}

// DashboardView is the dashboard page content. The collection counts are
// only populated for admins.
type DashboardView struct {
	MyRequests  int `json:"myRequests"`
	Accounts    int `json:"accounts,omitempty"`
	Departments int `json:"departments,omitempty"`
	Employees   int `json:"employees,omitempty"`
}

// Dashboard builds the dashboard page for the current account.
func Dashboard(doc store.Document, current *store.Account) DashboardView {
	var d DashboardView
	if current == nil {
		return d
	}
	for _, r := range doc.Requests {
		if r.EmployeeEmail == current.Email {
			d.MyRequests++
		}
	}
	if current.Role == store.RoleAdmin {
		d.Accounts = len(doc.Accounts)
		d.Departments = len(doc.Departments)
		d.Employees = len(doc.Employees)
	}
	return d
}

// Employees builds the employees table, resolving department names and
// leaving dangling references blank.
func Employees(doc store.Document) []EmployeeRow {
	names := make(map[string]string, len(doc.Departments))
	for _, d := range doc.Departments {
		names[d.ID] = d.Name
	}

	rows := make([]EmployeeRow, 0, len(doc.Employees))
	for _, e := range doc.Employees {
		rows = append(rows, EmployeeRow{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			Email:      e.Email,
			Position:   e.Position,
			Department: names[e.DeptID],
			HireDate:   e.HireDate,
		})
	}
	return rows
}

// Accounts builds the admin accounts table.
func Accounts(doc store.Document) []AccountRow {
	rows := make([]AccountRow, 0, len(doc.Accounts))
	for _, a := range doc.Accounts {
		rows = append(rows, AccountRow{
			ID:       a.ID,
			Name:     strings.TrimSpace(a.FirstName + " " + a.LastName),
			Email:    a.Email,
			Role:     a.Role,
			Verified: a.Verified,
		})
	}
	return rows
}
