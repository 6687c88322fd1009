package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	Author    string    `json:"author" db:"author"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the request body for posting a comment. Both fields are
// required; presence is checked before any database round trip.
type NewComment struct {
	Body     string `json:"body"`
	Username string `json:"username"`
}
