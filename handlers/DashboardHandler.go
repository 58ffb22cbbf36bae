package handlers

import (
	"database/sql"
	"net/http"

	"estimator/models"
	"estimator/repository"
	"estimator/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard summarizes the estimate pipeline
// @Summary Get dashboard summary
// @Description Aggregate estimate counts and value by status plus catalog and template totals
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/dashboard [get]
func GetDashboard(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		estimates, err := repository.ListEstimates(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimates"})
			return
		}
		items, err := repository.ListItems(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		templates, err := repository.ListTemplates(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
			return
		}

		summary := models.DashboardResponse{
			Estimates:     len(estimates),
			ByStatus:      map[string]int{},
			ValueByStatus: map[string]float64{},
			CatalogItems:  len(items),
			Templates:     len(templates),
		}

		for _, e := range estimates {
			// Stored totals can be stale for records written by hand;
			// recompute instead of trusting the cache.
			totals := services.ComputeTotals(e.Items, e.Discount)
			summary.ByStatus[e.Status]++
			summary.ValueByStatus[e.Status] += totals.FinalTotal
			if e.Status != models.StatusCompleted {
				summary.PipelineValue += totals.FinalTotal
			}
		}

		c.JSON(http.StatusOK, summary)
	}
}
