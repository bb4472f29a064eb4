package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/andriamanitra/portfolio-api/internal/models"
	"github.com/andriamanitra/portfolio-api/internal/store"
)

// GetCV returns the most recently created CV, or null when none exists.
func (h *Handler) GetCV(c *gin.Context) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	docs, err := h.Store.Find(c.Request.Context(), cvCollection, bson.M{}, 1, sort)
	if err != nil {
		storeError(c, err, "Failed to retrieve CV")
		return
	}

	if len(docs) == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, serialize(docs[0]))
}

func (h *Handler) CreateCV(c *gin.Context) {
	var cv models.Cv
	if err := c.ShouldBindJSON(&cv); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}
	cv.Normalize()
	cv.CreatedAt = time.Now().UTC()

	id, err := h.Store.Insert(c.Request.Context(), cvCollection, cv)
	if err != nil {
		storeError(c, err, "Failed to create CV")
		return
	}

	created, err := h.Store.FindByID(c.Request.Context(), cvCollection, id)
	if err != nil {
		storeError(c, err, "Failed to read back created CV")
		return
	}
	c.JSON(http.StatusCreated, serialize(created))
}

func (h *Handler) UpdateCV(c *gin.Context) {
	oid, err := store.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.CvUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	matched, err := h.Store.UpdateByID(c.Request.Context(), cvCollection, oid, fields)
	if err != nil {
		storeError(c, err, "Failed to update CV")
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV not found"})
		return
	}

	updated, err := h.Store.FindByID(c.Request.Context(), cvCollection, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "CV not found"})
			return
		}
		storeError(c, err, "Failed to read back updated CV")
		return
	}
	c.JSON(http.StatusOK, serialize(updated))
}

func (h *Handler) DeleteCV(c *gin.Context) {
	oid, err := store.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	deleted, err := h.Store.DeleteByID(c.Request.Context(), cvCollection, oid)
	if err != nil {
		storeError(c, err, "Failed to delete CV")
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": oid.Hex()})
}
