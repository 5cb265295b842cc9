// Package summary renders a fixed-layout PNG digest of the cached country
// dataset: total record count, the top five countries by estimated GDP, and
// the last refresh timestamp.
package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"countryservice/internal/apperrors"
	"countryservice/internal/model"
	"countryservice/internal/repository"
)

const (
	imageWidth  = 800
	imageHeight = 600
	topN        = 5
)

// Renderer produces the summary PNG from the current store contents.
// Rendering is read-only and deterministic for a given dataset: same
// dimensions, font, and ordering on every call.
type Renderer struct {
	countryRepo *repository.CountryRepository
}

// NewRenderer creates a new Renderer over the given repository.
func NewRenderer(countryRepo *repository.CountryRepository) *Renderer {
	return &Renderer{countryRepo: countryRepo}
}

// RenderSummary renders the digest and returns the encoded PNG bytes.
// An empty dataset yields a placeholder image, never an error.
func (r *Renderer) RenderSummary() ([]byte, error) {
	total, err := r.countryRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRenderSummary, err)
	}

	top, err := r.countryRepo.GetTopByGDP(topN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRenderSummary, err)
	}

	lastRefreshed, err := r.countryRepo.GetLastRefreshedAt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRenderSummary, err)
	}

	return render(total, top, lastRefreshed)
}

func render(total int, top []model.Country, lastRefreshed *time.Time) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	black := color.RGBA{A: 255}
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}

	drawText(img, 50, 50, black, "Country Data Summary")
	drawText(img, 50, 120, black, fmt.Sprintf("Total Countries: %d", total))

	if total == 0 {
		drawText(img, 50, 170, gray, "No country data cached yet. Trigger a refresh to populate the dataset.")
	} else {
		drawText(img, 50, 170, black, fmt.Sprintf("Top %d Countries by GDP:", topN))
		y := 210
		for i, country := range top {
			line := fmt.Sprintf("%d. %s: $%s", i+1, country.Name, formatAmount(*country.EstimatedGDP))
			drawText(img, 70, y, black, line)
			y += 40
		}
	}

	timestamp := "Last Refreshed: never"
	if lastRefreshed != nil {
		timestamp = fmt.Sprintf("Last Refreshed: %s", lastRefreshed.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	drawText(img, 50, 500, gray, timestamp)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRenderSummary, err)
	}

	return buf.Bytes(), nil
}

func drawText(img *image.RGBA, x, y int, col color.Color, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// formatAmount renders a value like 375000000.50 as "375,000,000.50".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var sign string
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + "." + parts[1]
}
