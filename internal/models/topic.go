package models

// Topic is a category articles are filed under. Topics are seeded and
// read-only; the slug doubles as the primary key.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
