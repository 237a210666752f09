package domain

// User represents an account holder. Token issuance lives elsewhere;
// this service only resolves verified token subjects to users.
type User struct {
	ID       string `json:"id"` // UUID
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive bool   `json:"is_active"`
}
