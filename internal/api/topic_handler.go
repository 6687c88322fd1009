package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(services *service.Services, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		services: services,
		log:      log.With().Str("handler", "topic").Logger(),
	}
}

// GetTopics handles GET /api/topics
func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.services.Topic.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
