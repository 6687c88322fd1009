package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apierr"
)

// intParam parses a path parameter that must be a positive integer. The
// check runs before any query is issued; a malformed id never reaches the
// store.
func intParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apierr.MalformedIdentifier()
	}
	return id, nil
}
