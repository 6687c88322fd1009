package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// endpointCatalog handles GET /api, serving the static catalog of
// available endpoints verbatim.
func endpointCatalog(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}
