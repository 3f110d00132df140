package models

import "github.com/google/uuid"

// Actor is the authenticated identity performing an operation. Role defaults
// to employee when no profile record exists for the subject.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

// CanApprove reports whether the actor may approve or reject requests.
func (a Actor) CanApprove() bool {
	return a.Role == RoleManager || a.Role == RoleAdmin
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
