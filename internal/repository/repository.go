package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	GetByID(ctx context.Context, id int) (*models.Article, error)
	GetAll(ctx context.Context, topic string) ([]models.Article, error)
	IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetByArticleID(ctx context.Context, articleID int) ([]models.Comment, error)
	Insert(ctx context.Context, articleID int, body, username string) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
	}
}
