package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full route table. Cross-origin
// requests are allowed from anywhere: this is a public read-mostly API.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)

	api := r.Group("/api")
	{
		api.GET("/cv", h.GetCV)
		api.POST("/cv", h.CreateCV)
		api.PUT("/cv/:id", h.UpdateCV)
		api.DELETE("/cv/:id", h.DeleteCV)

		api.GET("/projects", h.ListProjects)
		api.POST("/projects", h.CreateProject)
		api.PUT("/projects/:id", h.UpdateProject)
		api.DELETE("/projects/:id", h.DeleteProject)
	}

	return r
}
