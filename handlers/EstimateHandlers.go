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

// GetEstimates retrieves all estimates
// @Summary Get all estimates
// @Description Retrieve all estimates, most recently updated first
// @Tags Estimates
// @Produce json
// @Success 200 {array} models.Estimate
// @Failure 500 {object} models.ErrorResponse
// @Router /api/estimates [get]
func GetEstimates(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		estimates, err := repository.ListEstimates(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimates"})
			return
		}
		c.JSON(http.StatusOK, estimates)
	}
}

// GetEstimate retrieves a specific estimate by ID
// @Summary Get estimate by ID
// @Description Retrieve a specific estimate by ID
// @Tags Estimates
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} models.Estimate
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id} [get]
func GetEstimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		estimate, err := repository.GetEstimate(db, c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimate"})
			return
		}
		c.JSON(http.StatusOK, estimate)
	}
}

// CreateEstimate creates a new estimate
// @Summary Create estimate
// @Description Create a new estimate; omitted fields take working defaults
// @Tags Estimates
// @Accept json
// @Produce json
// @Param request body models.Estimate true "Estimate creation request"
// @Success 201 {object} models.Estimate
// @Failure 400 {object} models.ErrorResponse
// @Router /api/estimates [post]
func CreateEstimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		estimate := repository.NewEstimate()
		if err := c.ShouldBindJSON(estimate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := repository.SaveEstimate(db, estimate); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save estimate"})
			return
		}
		c.JSON(http.StatusCreated, estimate)
	}
}

// UpdateEstimate updates an estimate
// @Summary Update estimate
// @Description Replace an estimate; totals are recomputed before the write
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Param request body models.Estimate true "Estimate update request"
// @Success 200 {object} models.Estimate
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id} [put]
func UpdateEstimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		existing, err := repository.GetEstimate(db, id)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimate"})
			return
		}

		estimate := *existing
		if err := c.ShouldBindJSON(&estimate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// The path owns identity and creation time.
		estimate.ID = id
		estimate.CreatedAt = existing.CreatedAt

		if err := repository.SaveEstimate(db, &estimate); err != nil {
			if errors.Is(err, repository.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save estimate"})
			return
		}
		c.JSON(http.StatusOK, estimate)
	}
}

// DeleteEstimate deletes an estimate
// @Summary Delete estimate
// @Description Delete an estimate by ID; deleting a missing ID still succeeds
// @Tags Estimates
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/estimates/{id} [delete]
func DeleteEstimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repository.DeleteEstimate(db, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete estimate"})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Estimate deleted successfully"})
	}
}

// DuplicateEstimate duplicates an estimate
// @Summary Duplicate estimate
// @Description Copy an estimate under a new ID with status reset to draft
// @Tags Estimates
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 201 {object} models.Estimate
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id}/duplicate [post]
func DuplicateEstimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		duplicate, err := repository.DuplicateEstimate(db, c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to duplicate estimate"})
			return
		}
		c.JSON(http.StatusCreated, duplicate)
	}
}
