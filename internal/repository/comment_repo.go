package repository

import (
	"context"

	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// GetByArticleID retrieves an article's comments newest-first. An empty
// list is a valid result; whether the article itself exists is the
// caller's concern, checked through a separate round trip.
func (r *commentRepo) GetByArticleID(ctx context.Context, articleID int) ([]models.Comment, error) {
	query := `
		SELECT comment_id, body, author, article_id, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.CommentID, &comment.Body, &comment.Author,
			&comment.ArticleID, &comment.Votes, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Insert creates a comment with zero votes and returns the stored row,
// including the generated id and timestamp.
func (r *commentRepo) Insert(ctx context.Context, articleID int, body, username string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id, votes)
		VALUES ($1, $2, $3, 0)
		RETURNING comment_id, body, author, article_id, votes, created_at
	`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, body, username, articleID).Scan(
		&comment.CommentID, &comment.Body, &comment.Author,
		&comment.ArticleID, &comment.Votes, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete removes a comment by id in one round trip. Zero affected rows
// means the id matched nothing and surfaces as a typed not-found.
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apierr.CommentNotFound()
	}
	return nil
}
