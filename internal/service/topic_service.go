package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService implements TopicService
type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) TopicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

// List fetches all topics; ordering is not part of the contract
func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topics.GetAll(ctx)
}
