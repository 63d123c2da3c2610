package user

import "time"

// Role determines what a user may do: admins manage all records, employees
// only see their own.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	EmployeeName string
	Role         Role
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
