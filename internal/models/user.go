package models

// User represents one row of the users sheet. Passwords are stored in
// plaintext in the sheet; that is the sheet's contract, not a choice
// this service can make.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// RoleAdmin is the role string required for create/update/delete
// routes. Roles are flat strings with no hierarchy; gates compare for
// exact equality.
const RoleAdmin = "admin"

// Users sheet column layout (1-based).
const (
	UserColUsername = iota + 1
	UserColName
	UserColPassword
	UserColRole
)
