package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"estimator/repository"
	"estimator/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX exports all estimates as an Excel workbook
// @Summary Export estimates as XLSX
// @Description Export every estimate and its line items into a two-sheet Excel workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "XLSX file"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/export/xlsx [get]
func ExportXLSX(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		estimates, err := repository.ListEstimates(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimates"})
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		estimateSheet := "Estimates"
		itemSheet := "Line Items"
		index, err := f.NewSheet(estimateSheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating estimates sheet"})
			return
		}
		if _, err := f.NewSheet(itemSheet); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating items sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   true,
				Size:   12,
				Family: "Arial",
				Color:  "#FFFFFF",
			},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{"#4472C4"},
				Pattern: 1,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating header style"})
			return
		}

		estimateHeader := []string{"Name", "Object", "Address", "Status", "Date", "Area", "Perimeter", "Subtotal", "Discount %", "Final Total"}
		for col, title := range estimateHeader {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(estimateSheet, cell, title)
		}
		f.SetCellStyle(estimateSheet, "A1", "J1", headerStyle)

		itemHeader := []string{"Estimate", "Item", "Unit", "Quantity", "Price", "Total"}
		for col, title := range itemHeader {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(itemSheet, cell, title)
		}
		f.SetCellStyle(itemSheet, "A1", "F1", headerStyle)

		itemRow := 2
		for row, e := range estimates {
			totals := services.ComputeTotals(e.Items, e.Discount)
			values := []interface{}{
				e.Name, e.Object, e.Address, e.Status, e.Date,
				e.Area, e.Perimeter, totals.Subtotal, e.Discount, totals.FinalTotal,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(estimateSheet, cell, v)
			}

			for _, item := range e.Items {
				itemValues := []interface{}{
					e.Name, item.Name, item.Unit, item.Quantity, item.Price, services.LineTotal(item),
				}
				for col, v := range itemValues {
					cell, _ := excelize.CoordinatesToCellName(col+1, itemRow)
					f.SetCellValue(itemSheet, cell, v)
				}
				itemRow++
			}
		}

		f.SetColWidth(estimateSheet, "A", "A", 30)
		f.SetColWidth(estimateSheet, "B", "E", 16)
		f.SetColWidth(itemSheet, "A", "B", 30)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=estimates_%s.xlsx", time.Now().Format("20060102")))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}
