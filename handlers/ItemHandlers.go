package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"estimator/models"
	"estimator/repository"
	"estimator/storage"

	"github.com/gin-gonic/gin"
)

// GetItems retrieves all catalog items
// @Summary Get all catalog items
// @Description Retrieve all reusable catalog items sorted by category and name
// @Tags Items
// @Produce json
// @Success 200 {array} models.CatalogEntry
// @Failure 500 {object} models.ErrorResponse
// @Router /api/items [get]
func GetItems(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repository.ListItems(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreateItem creates a catalog item
// @Summary Create catalog item
// @Description Create a new reusable catalog item
// @Tags Items
// @Accept json
// @Produce json
// @Param request body models.CatalogEntry true "Item creation request"
// @Success 201 {object} models.CatalogEntry
// @Failure 400 {object} models.ErrorResponse
// @Router /api/items [post]
func CreateItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.CatalogEntry
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ID = ""

		if err := repository.SaveItem(db, &item); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateItem updates a catalog item
// @Summary Update catalog item
// @Description Update an existing catalog item
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.CatalogEntry true "Item update request"
// @Success 200 {object} models.CatalogEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/items/{id} [put]
func UpdateItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		existing, err := repository.GetCatalogEntry(db, id)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
			return
		}

		item := *existing
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ID = id
		item.CreatedAt = existing.CreatedAt

		if err := repository.SaveItem(db, &item); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DeleteItem deletes a catalog item
// @Summary Delete catalog item
// @Description Delete a catalog item by ID
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/items/{id} [delete]
func DeleteItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repository.DeleteCatalogEntry(db, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Item deleted successfully"})
	}
}

// RememberItem files an estimate line item into the catalog
// @Summary Remember line item
// @Description Save an estimate line item into the catalog for reuse; a duplicate name is skipped
// @Tags Items
// @Accept json
// @Produce json
// @Param request body models.LineItem true "Line item to remember"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/items/remember [post]
func RememberItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.LineItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := repository.RememberItem(db, item); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Item remembered"})
	}
}
