package service

import (
	"context"

	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// articleService implements ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// GetByID fetches a single article
func (s *articleService) GetByID(ctx context.Context, id int) (*models.Article, error) {
	return s.repos.Article.GetByID(ctx, id)
}

// List fetches all articles, optionally restricted to one topic. The topic
// filter is validated against the topic set concurrently with the fetch: a
// syntactically valid but unknown topic is a failed query, not an empty
// list. An unfiltered listing skips the validation entirely.
func (s *articleService) List(ctx context.Context, topic string) ([]models.Article, error) {
	if topic == "" {
		return s.repos.Article.GetAll(ctx, "")
	}

	var articles []models.Article
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		exists, err := s.repos.Topic.Exists(gctx, topic)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.InvalidTopicQuery()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		articles, err = s.repos.Article.GetAll(gctx, topic)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return articles, nil
}

// AdjustVotes applies a signed increment to an article's vote count. The
// repository does the arithmetic in a single statement; this layer never
// reads then writes.
func (s *articleService) AdjustVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	article, err := s.repos.Article.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("article_id", id).Int("delta", delta).Int("votes", article.Votes).Msg("Votes adjusted")
	return article, nil
}
