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

// GetCategories retrieves all catalog categories
// @Summary Get all categories
// @Description Retrieve all catalog categories in sort order
// @Tags Categories
// @Produce json
// @Success 200 {array} models.CatalogEntry
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories [get]
func GetCategories(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repository.ListCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory creates a catalog category
// @Summary Create category
// @Description Create a new catalog category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body models.CatalogEntry true "Category creation request"
// @Success 201 {object} models.CatalogEntry
// @Failure 400 {object} models.ErrorResponse
// @Router /api/categories [post]
func CreateCategory(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.CatalogEntry
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category.ID = ""

		if err := repository.SaveCategory(db, &category); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory updates a catalog category
// @Summary Update category
// @Description Update an existing catalog category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body models.CatalogEntry true "Category update request"
// @Success 200 {object} models.CatalogEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/{id} [put]
func UpdateCategory(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		existing, err := repository.GetCatalogEntry(db, id)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}

		category := *existing
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category.ID = id
		category.CreatedAt = existing.CreatedAt

		if err := repository.SaveCategory(db, &category); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory deletes a catalog category
// @Summary Delete category
// @Description Delete a catalog category by ID
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories/{id} [delete]
func DeleteCategory(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repository.DeleteCatalogEntry(db, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Category deleted successfully"})
	}
}
