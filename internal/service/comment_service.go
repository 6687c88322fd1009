package service

import (
	"context"

	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// commentService implements CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) CommentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// ListByArticle fetches an article's comments newest-first. The comments
// query alone cannot tell "no comments" from "no article", so an existence
// check runs alongside it and its failure takes precedence.
func (s *commentService) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	var comments []models.Comment
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		comments, err = s.repos.Comment.GetByArticleID(gctx, articleID)
		return err
	})
	g.Go(func() error {
		exists, err := s.repos.Article.Exists(gctx, articleID)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.ArticleNotFound(apierr.MsgArticleDoesNotExistTitle)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a comment after confirming both references resolve. The
// checks run before the insert so a broken reference maps to its own
// not-found rather than a generic write error.
func (s *commentService) Create(ctx context.Context, articleID int, newComment *models.NewComment) (*models.Comment, error) {
	if newComment.Body == "" || newComment.Username == "" {
		return nil, apierr.MissingField()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		exists, err := s.repos.User.Exists(gctx, newComment.Username)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.UserNotFound()
		}
		return nil
	})
	g.Go(func() error {
		exists, err := s.repos.Article.Exists(gctx, articleID)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.ArticleNotFound(apierr.MsgArticleDoesNotExistTitle)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	comment, err := s.repos.Comment.Insert(ctx, articleID, newComment.Body, newComment.Username)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("comment_id", comment.CommentID).Int("article_id", articleID).Msg("Comment created")
	return comment, nil
}

// Delete removes a comment by id
func (s *commentService) Delete(ctx context.Context, id int) error {
	return s.repos.Comment.Delete(ctx, id)
}
