package models

// User represents a user in the system. Users are seeded and read-only;
// articles and comments reference them by username.
type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}
