package domain

// UserSummary is the read-only view of a user shown to administrators.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
