package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetArticles handles GET /api/articles?topic=...
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	topic := c.Query("topic")

	articles, err := h.services.Article.List(c.Request.Context(), topic)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	id, err := intParam(c, "article_id")
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticleVotes(c *gin.Context) {
	id, err := intParam(c, "article_id")
	if err != nil {
		c.Error(err)
		return
	}

	var patch models.VotePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		// Present but non-numeric, or a body that is not an object
		c.Error(apierr.InvalidFieldType())
		return
	}
	if patch.IncVotes == nil {
		c.Error(apierr.MissingField())
		return
	}

	article, err := h.services.Article.AdjustVotes(c.Request.Context(), id, *patch.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"article": article})
}
