package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// GetCommentsByArticle handles GET /api/articles/:article_id/comments
func (h *CommentHandler) GetCommentsByArticle(c *gin.Context) {
	id, err := intParam(c, "article_id")
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) PostComment(c *gin.Context) {
	id, err := intParam(c, "article_id")
	if err != nil {
		c.Error(err)
		return
	}

	var newComment models.NewComment
	if err := c.ShouldBindJSON(&newComment); err != nil {
		c.Error(apierr.InvalidFieldType())
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), id, &newComment)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := intParam(c, "comment_id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
