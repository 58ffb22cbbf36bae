package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"

	"estimator/repository"
	"estimator/storage"
	"estimator/utils"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// addLabel draws regular text onto the label image.
func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: inconsolata.Regular8x16,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(label)
}

// addLabelBold draws a bold field label.
func addLabelBold(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{30, 30, 30, 255}),
		Face: inconsolata.Bold8x16,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(label)
}

// truncateLabel shortens long values to fit the caption row. It cuts on rune
// boundaries so a multibyte name never renders as broken UTF-8.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return s
}

// GenerateEstimateQRJPEG godoc
// @Summary      Generate estimate QR label as JPEG
// @Description  QR code carrying the estimate identity with a printed caption block
// @Tags         qr
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {file}    file  "JPEG image"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/estimates/{id}/qr [get]
func GenerateEstimateQRJPEG(db *sql.DB) gin.HandlerFunc {
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

		qrData := struct {
			ID         string  `json:"id"`
			Name       string  `json:"name"`
			Status     string  `json:"status"`
			FinalTotal float64 `json:"finalTotal"`
		}{
			ID:         estimate.ID,
			Name:       estimate.Name,
			Status:     estimate.Status,
			FinalTotal: estimate.FinalTotal,
		}

		jsonData, err := json.Marshal(qrData)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to marshal estimate data"})
			return
		}

		qr, err := qrcode.New(string(jsonData), qrcode.Medium)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR code generation failed")
			return
		}
		qrImg := qr.Image(512)

		qrSize := qrImg.Bounds().Dy()
		padding := 30
		lineHeight := 28
		textAreaHeight := 4*lineHeight + padding
		totalHeight := qrSize + padding + textAreaHeight

		combinedImg := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
		draw.Draw(combinedImg, combinedImg.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
		draw.Draw(combinedImg, image.Rect(0, 0, qrSize, qrSize), qrImg, image.Point{}, draw.Src)

		separatorY := qrSize + padding/2
		for x := 0; x < qrSize; x++ {
			combinedImg.Set(x, separatorY, color.RGBA{200, 200, 200, 255})
		}

		startY := qrSize + padding + lineHeight
		xPos := 20

		addLabelBold(combinedImg, xPos, startY, "Estimate:")
		addLabel(combinedImg, xPos+120, startY, truncateLabel(estimate.Name, 30))

		addLabelBold(combinedImg, xPos, startY+lineHeight, "Object:")
		addLabel(combinedImg, xPos+120, startY+lineHeight, truncateLabel(estimate.Object, 30))

		addLabelBold(combinedImg, xPos, startY+2*lineHeight, "Date:")
		addLabel(combinedImg, xPos+120, startY+2*lineHeight, estimate.Date)

		addLabelBold(combinedImg, xPos, startY+3*lineHeight, "Total:")
		addLabel(combinedImg, xPos+120, startY+3*lineHeight, utils.FormatMoney(estimate.FinalTotal))

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, combinedImg, nil); err != nil {
			c.String(http.StatusInternalServerError, "JPEG encoding failed")
			return
		}

		c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
	}
}
