package handlers

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"estimator/repository"
	"estimator/services"
	"estimator/storage"
	"estimator/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateEstimatePDF godoc
// @Summary      Generate estimate PDF
// @Description  Render a printable commercial offer for one estimate
// @Tags         pdf
// @Param        id   path  string  true  "Estimate ID"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/estimates/{id}/pdf [get]
func GenerateEstimatePDF(db *sql.DB) gin.HandlerFunc {
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

		company, err := repository.GetCompanyProfile(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company profile"})
			return
		}

		titleCaser := cases.Title(language.Und)
		totals := services.ComputeTotals(estimate.Items, estimate.Discount)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AliasNbPages("")
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont("Arial", "I", 8)
			pdf.CellFormat(190, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		// --- Company header ---
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(130, 8, company.Name)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(60, 8, company.Phone, "", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(130, 5, company.Address)
		pdf.CellFormat(60, 5, company.Email, "", 1, "R", false, 0, "")
		if company.AdditionalPhone != "" {
			pdf.CellFormat(190, 5, company.AdditionalPhone, "", 1, "R", false, 0, "")
		}
		pdf.Ln(6)

		// --- Title ---
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(190, 10, "COMMERCIAL OFFER", "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(190, 6, fmt.Sprintf("No. %s of %s", estimate.Name, estimate.Date), "", 1, "C", false, 0, "")
		pdf.Ln(6)

		// --- Client block ---
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 6, "Object details")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, fmt.Sprintf("Object: %s", estimate.Object))
		pdf.Cell(95, 6, fmt.Sprintf("Status: %s", titleCaser.String(estimate.Status)))
		pdf.Ln(6)
		if estimate.Address != "" {
			pdf.Cell(190, 6, fmt.Sprintf("Address: %s", estimate.Address))
			pdf.Ln(6)
		}
		pdf.Cell(95, 6, fmt.Sprintf("Rooms: %d", estimate.Rooms))
		pdf.Cell(95, 6, fmt.Sprintf("Ceiling height: %.2f m", estimate.Height))
		pdf.Ln(6)
		pdf.Cell(95, 6, fmt.Sprintf("Area: %.2f m2", estimate.Area))
		pdf.Cell(95, 6, fmt.Sprintf("Perimeter: %.2f lm", estimate.Perimeter))
		pdf.Ln(10)

		// --- Items table ---
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(10, 8, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(80, 8, "Work / Material", "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 8, "Unit", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "Price", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 8, "Total", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for i, item := range estimate.Items {
			pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(80, 7, item.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 7, item.Unit, "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 7, utils.FormatMoney(item.Price), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, utils.FormatMoney(services.LineTotal(item)), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)

		// --- Totals ---
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(160, 7, "Subtotal")
		pdf.CellFormat(30, 7, utils.FormatMoney(totals.Subtotal), "1", 1, "R", false, 0, "")
		if estimate.Discount != 0 {
			pdf.Cell(160, 7, fmt.Sprintf("Discount (%.1f%%)", estimate.Discount))
			pdf.CellFormat(30, 7, utils.FormatMoney(totals.DiscountAmount), "1", 1, "R", false, 0, "")
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(160, 8, "Total")
		pdf.CellFormat(30, 8, utils.FormatMoney(totals.FinalTotal), "1", 1, "R", false, 0, "")
		pdf.Ln(6)

		// --- Terms ---
		if company.PaymentTerms != "" {
			pdf.SetFont("Arial", "B", 10)
			pdf.Cell(190, 6, "Payment terms")
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(190, 5, company.PaymentTerms, "", "L", false)
			pdf.Ln(2)
		}
		if company.Warranty != "" {
			pdf.SetFont("Arial", "B", 10)
			pdf.Cell(190, 6, "Warranty")
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(190, 5, company.Warranty, "", "L", false)
			pdf.Ln(2)
		}
		if estimate.Notes != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(190, 5, estimate.Notes, "", "L", false)
			pdf.Ln(2)
		}

		// --- QR with estimate identity ---
		qrPNG, err := qrcode.Encode(fmt.Sprintf("%s | %s | %s", estimate.ID, estimate.Name, utils.FormatMoney(totals.FinalTotal)), qrcode.Medium, 256)
		if err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("estimate-qr", opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("estimate-qr", 165, pdf.GetY(), 25, 25, false, opts, 0, "")
		}

		// --- Signatures ---
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, "Contractor: _______________________")
		pdf.Cell(95, 6, "Customer: _______________________")
		pdf.Ln(10)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 5, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=estimate_%s.pdf", estimate.ID))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}
