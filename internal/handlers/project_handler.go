package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/andriamanitra/portfolio-api/internal/models"
	"github.com/andriamanitra/portfolio-api/internal/store"
)

const defaultProjectLimit = 50

// ListProjects returns up to ?limit=N projects in storage-natural order.
func (h *Handler) ListProjects(c *gin.Context) {
	limit := int64(defaultProjectLimit)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = n
		}
	}
	if limit <= 0 {
		c.JSON(http.StatusOK, []bson.M{})
		return
	}

	docs, err := h.Store.Find(c.Request.Context(), projectCollection, bson.M{}, limit, nil)
	if err != nil {
		storeError(c, err, "Failed to retrieve projects")
		return
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, serialize(doc))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}
	project.Normalize()
	project.CreatedAt = time.Now().UTC()

	id, err := h.Store.Insert(c.Request.Context(), projectCollection, project)
	if err != nil {
		storeError(c, err, "Failed to create project")
		return
	}

	created, err := h.Store.FindByID(c.Request.Context(), projectCollection, id)
	if err != nil {
		storeError(c, err, "Failed to read back created project")
		return
	}
	c.JSON(http.StatusCreated, serialize(created))
}

func (h *Handler) UpdateProject(c *gin.Context) {
	oid, err := store.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.ProjectUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	matched, err := h.Store.UpdateByID(c.Request.Context(), projectCollection, oid, fields)
	if err != nil {
		storeError(c, err, "Failed to update project")
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	updated, err := h.Store.FindByID(c.Request.Context(), projectCollection, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		storeError(c, err, "Failed to read back updated project")
		return
	}
	c.JSON(http.StatusOK, serialize(updated))
}

func (h *Handler) DeleteProject(c *gin.Context) {
	oid, err := store.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	deleted, err := h.Store.DeleteByID(c.Request.Context(), projectCollection, oid)
	if err != nil {
		storeError(c, err, "Failed to delete project")
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": oid.Hex()})
}
