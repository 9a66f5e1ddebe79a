package models

// Roles a resolved caller can hold.
const (
	RoleSubmitter  = "submitter"
	RoleTeamMember = "team_member"
	RoleManager    = "manager"
)

// User is the identity attached to a request after session resolution.
type User struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Team    string `json:"team,omitempty"`
	Picture string `json:"picture,omitempty"`
}
