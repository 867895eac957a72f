package model

import "time"

// Role is the authorization level carried inside auth tokens.
//
// NOTE: adding a role constant here requires updating service.ViewerRoles;
// TestViewerRolesCoversAllRoles fails otherwise.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// AllRoles lists every defined role. Kept next to the constants so the
// allow-list exhaustiveness test can iterate it.
var AllRoles = []Role{RoleAdmin, RoleViewer}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
