package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// GetByID retrieves an article by id. A well-formed id with no matching row
// is a typed not-found, never a nil success.
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT article_id, title, topic, author, body, created_at, votes, article_img_url
		FROM articles WHERE article_id = $1
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apierr.ArticleNotFound(apierr.MsgArticleDoesNotExist)
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// GetAll retrieves all articles newest-first, each with its comment count.
// The count comes from a left join so articles with no comments appear with
// zero. An empty topic means no filtering; a topic that exists but has no
// articles legitimately yields an empty list.
func (r *articleRepo) GetAll(ctx context.Context, topic string) ([]models.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
			articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
	`
	var args []interface{}
	if topic != "" {
		query += ` WHERE articles.topic = $1`
		args = append(args, topic)
	}
	query += `
		GROUP BY articles.article_id
		ORDER BY articles.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var article models.Article
		var commentCount int
		err := rows.Scan(
			&article.ArticleID, &article.Title, &article.Topic, &article.Author,
			&article.CreatedAt, &article.Votes, &article.ArticleImgURL, &commentCount,
		)
		if err != nil {
			return nil, err
		}
		article.CommentCount = &commentCount
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// IncrementVotes applies votes = votes + delta in a single statement and
// returns the updated row. The increment happens at the row level, so
// concurrent patches to the same article never lose updates.
func (r *articleRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apierr.ArticleNotFound(apierr.MsgArticleDoesNotExist)
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Exists checks if an article with the given id exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}
