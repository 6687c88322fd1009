package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	GetByID(ctx context.Context, id int) (*models.Article, error)
	List(ctx context.Context, topic string) ([]models.Article, error)
	AdjustVotes(ctx context.Context, id, delta int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, newComment *models.NewComment) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
		User:    newUserService(repos.User, log),
	}
}
