// internal/api/docs.go
package api

// These types are for Swagger documentation
type UserResponse struct {
	ID    string `json:"id" example:"1755852000000"`
	Email string `json:"email" example:"umama@10minuteschool.com"`
	Name  string `json:"name" example:"Umama"`
	Role  string `json:"role" example:"team_member"`
	Team  string `json:"team" example:"SMD"`
}

type TeamLoginRequest struct {
	Email    string `json:"email" example:"umama@10minuteschool.com"`
	Password string `json:"password" example:"password123"`
}

type StatusUpdateRequest struct {
	ID             string `json:"id" example:"3"`
	Status         string `json:"status" example:"in-progress"`
	ExpectedStatus string `json:"expected_status,omitempty" example:"pending"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}
