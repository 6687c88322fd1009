package models

import (
	"time"
)

// Article represents an article in the system. CommentCount is derived at
// query time by counting associated comments; it is never stored. The list
// query populates it (zero included) while the single-article query leaves
// it nil, so the pointer keeps the two payload shapes apart.
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body,omitempty" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  *int      `json:"comment_count,omitempty" db:"comment_count"`
}

// VotePatch is the request body for adjusting an article's vote count.
// IncVotes is a pointer so an absent field is distinguishable from zero.
type VotePatch struct {
	IncVotes *int `json:"inc_votes"`
}
