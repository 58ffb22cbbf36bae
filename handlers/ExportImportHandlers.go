package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"estimator/models"
	"estimator/services"

	"github.com/gin-gonic/gin"
)

// ExportJSON exports collections as a tagged JSON document
// @Summary Export data as JSON
// @Description Export one collection or all of them as a downloadable tagged JSON document
// @Tags Export
// @Produce json
// @Param collection query string false "Collection to export: estimates, items, templates or all" default(all)
// @Success 200 {object} models.ExportDocument
// @Failure 400 {object} models.ErrorResponse
// @Router /api/export [get]
func ExportJSON(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.DefaultQuery("collection", models.KindAll)
		switch kind {
		case models.KindEstimates, models.KindItems, models.KindTemplates, models.KindAll:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown collection %q", kind)})
			return
		}

		doc, err := services.BuildExport(db, kind)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
			return
		}

		filename := fmt.Sprintf("estimator-%s-%s.json", kind, time.Now().Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.JSON(http.StatusOK, doc)
	}
}

// ImportJSON imports a JSON payload
// @Summary Import data from JSON
// @Description Import a tagged export document or a legacy bare JSON array; records are upserted incrementally
// @Tags Export
// @Accept json
// @Produce json
// @Success 200 {object} models.ImportSummary
// @Failure 400 {object} models.ErrorResponse
// @Router /api/import [post]
func ImportJSON(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		summary, err := services.ImportJSON(db, payload)
		if errors.Is(err, services.ErrUnrecognizedImport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			// Partial imports are reported alongside the error so the
			// caller knows what was already written.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "imported": summary})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
