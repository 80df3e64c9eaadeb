package types

// UserResponse is the outward-facing user shape. The password hash never
// leaves the models package.
type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
