package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio/CV API running"})
}

// TestDatabase reports process and store connectivity. It never fails the
// request: introspection errors are downgraded to a status string.
func (h *Handler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus(h.Cfg.MongoURI),
		"database_name":     envStatus(h.Cfg.DatabaseName),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.Store.Available() {
		resp["database"] = "available"
		resp["connection_status"] = "connected"

		collections, err := h.Store.Collections(c.Request.Context())
		if err != nil {
			resp["database"] = fmt.Sprintf("connected but error: %.50s", err.Error())
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			resp["collections"] = collections
			resp["database"] = "connected and working"
		}
	}

	c.JSON(http.StatusOK, resp)
}

func envStatus(value string) string {
	if value != "" {
		return "set"
	}
	return "not set"
}
