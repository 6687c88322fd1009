package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(errorRenderer())

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	topicHandler := NewTopicHandler(services, log)
	userHandler := NewUserHandler(services, log)

	api := router.Group("/api")
	{
		api.GET("/healthcheck", healthCheck)
		api.GET("", endpointCatalog)

		api.GET("/topics", topicHandler.GetTopics)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:article_id", articleHandler.GetArticleByID)
			articles.PATCH("/:article_id", articleHandler.PatchArticleVotes)
			articles.GET("/:article_id/comments", commentHandler.GetCommentsByArticle)
			articles.POST("/:article_id/comments", commentHandler.PostComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)

		api.GET("/users", userHandler.GetUsers)
	}

	// Anything unmatched falls through to the catch-all
	router.NoRoute(endpointNotFound)
	router.NoMethod(endpointNotFound)

	return router
}

// healthCheck confirms the server is up; it deliberately touches nothing
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "All OK"})
}

// endpointNotFound renders the catch-all response for unmatched routes
func endpointNotFound(c *gin.Context) {
	routeErr := apierr.RouteNotFound()
	c.JSON(routeErr.Status, routeErr)
}

// errorRenderer is the terminal stage of the failure path: every error a
// handler attached is classified against the taxonomy and rendered as a
// single {status, message} response. Handlers never write error bodies
// themselves.
func errorRenderer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		rendered := apierr.Classify(c.Errors.Last().Err)
		c.JSON(rendered.Status, rendered)
	}
}

// requestIDMiddleware tags each request with a correlation id
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				internal := apierr.Internal()
				c.JSON(internal.Status, internal)
				c.Abort()
			}
		}()
		c.Next()
	}
}
