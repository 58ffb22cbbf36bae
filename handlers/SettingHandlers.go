package handlers

import (
	"database/sql"
	"net/http"

	"estimator/models"
	"estimator/repository"

	"github.com/gin-gonic/gin"
)

// GetCompanyProfile retrieves the company profile
// @Summary Get company profile
// @Description Retrieve the contractor identity printed on quote documents
// @Tags Settings
// @Produce json
// @Success 200 {object} models.CompanyProfile
// @Failure 500 {object} models.ErrorResponse
// @Router /api/settings/company [get]
func GetCompanyProfile(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := repository.GetCompanyProfile(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateCompanyProfile updates the company profile
// @Summary Update company profile
// @Description Replace the contractor identity used on quote documents
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body models.CompanyProfile true "Company profile"
// @Success 200 {object} models.CompanyProfile
// @Failure 400 {object} models.ErrorResponse
// @Router /api/settings/company [put]
func UpdateCompanyProfile(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.CompanyProfile
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := repository.SaveCompanyProfile(db, &profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save company profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
