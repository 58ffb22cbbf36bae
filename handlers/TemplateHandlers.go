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

// GetTemplates retrieves all work templates
// @Summary Get all templates
// @Description Retrieve all work templates sorted by name
// @Tags Templates
// @Produce json
// @Success 200 {array} models.Template
// @Failure 500 {object} models.ErrorResponse
// @Router /api/templates [get]
func GetTemplates(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		templates, err := repository.ListTemplates(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
			return
		}
		c.JSON(http.StatusOK, templates)
	}
}

// GetTemplate retrieves a specific template by ID
// @Summary Get template by ID
// @Description Retrieve a specific work template by ID
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.Template
// @Failure 404 {object} models.ErrorResponse
// @Router /api/templates/{id} [get]
func GetTemplate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		template, err := repository.GetTemplate(db, c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
			return
		}
		c.JSON(http.StatusOK, template)
	}
}

// CreateTemplate creates a work template
// @Summary Create template
// @Description Create a new work template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body models.Template true "Template creation request"
// @Success 201 {object} models.Template
// @Failure 400 {object} models.ErrorResponse
// @Router /api/templates [post]
func CreateTemplate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var template models.Template
		if err := c.ShouldBindJSON(&template); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		template.ID = ""

		if err := repository.SaveTemplate(db, &template); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
			return
		}
		c.JSON(http.StatusCreated, template)
	}
}

// UpdateTemplate updates a work template
// @Summary Update template
// @Description Update an existing work template
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body models.Template true "Template update request"
// @Success 200 {object} models.Template
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/templates/{id} [put]
func UpdateTemplate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		existing, err := repository.GetTemplate(db, id)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
			return
		}

		template := *existing
		if err := c.ShouldBindJSON(&template); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		template.ID = id

		if err := repository.SaveTemplate(db, &template); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
			return
		}
		c.JSON(http.StatusOK, template)
	}
}

// DeleteTemplate deletes a work template
// @Summary Delete template
// @Description Delete a work template by ID
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/templates/{id} [delete]
func DeleteTemplate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repository.DeleteTemplate(db, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Template deleted successfully"})
	}
}

// ApplyTemplate appends a template's items to an estimate
// @Summary Apply template to estimate
// @Description Append a template's line items to an estimate, seeding quantities from its measurements
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Param estimateId path string true "Estimate ID"
// @Success 200 {object} models.Estimate
// @Failure 404 {object} models.ErrorResponse
// @Router /api/templates/{id}/apply/{estimateId} [post]
func ApplyTemplate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		estimate, err := repository.ApplyTemplate(db, c.Param("id"), c.Param("estimateId"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template or estimate not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply template"})
			return
		}
		c.JSON(http.StatusOK, estimate)
	}
}
