package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	chartWidth  = 640
	chartHeight = 400
	chartMargin = 40
)

var (
	bgColor  = color.White
	barColor = color.RGBA{R: 0x2f, G: 0x6f, B: 0xb0, A: 0xff}
	axisColor = color.Black
)

// WriteChart renders the Δhp→probability histogram as a PNG bar chart
// (§4.G expansion), for users who want a picture instead of the text
// table WriteSummary already prints.
func WriteChart(path string, s Stats) error {
	if len(s.Histogram) == 0 {
		return fmt.Errorf("report: no histogram data to chart")
	}

	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)

	plotW := chartWidth - 2*chartMargin
	plotH := chartHeight - 2*chartMargin
	baseY := chartHeight - chartMargin

	drawLine(img, chartMargin, chartMargin, chartMargin, baseY, axisColor)
	drawLine(img, chartMargin, baseY, chartWidth-chartMargin, baseY, axisColor)

	maxProb := 0.0
	for _, b := range s.Histogram {
		if b.Probability > maxProb {
			maxProb = b.Probability
		}
	}

	barW := plotW / len(s.Histogram)
	if barW < 1 {
		barW = 1
	}

	face, err := chartFace()
	if err != nil {
		return err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(face)
	ctx.SetFontSize(10)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(axisColor))

	for i, b := range s.Histogram {
		x0 := chartMargin + i*barW
		h := 0
		if maxProb > 0 {
			h = int(float64(plotH) * b.Probability / maxProb)
		}
		fillRect(img, x0, baseY-h, x0+barW-1, baseY, barColor)

		label := fmt.Sprintf("%+d", b.Delta)
		pt := freetype.Pt(x0, baseY+14)
		if _, err := ctx.DrawString(label, pt); err != nil {
			return err
		}
	}

	title := "hp change distribution"
	if _, err := ctx.DrawString(title, freetype.Pt(chartMargin, chartMargin-10)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func chartFace() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			img.Set(x0, y, c)
		}
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, c)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	draw.Draw(img, image.Rect(x0, y0, x1+1, y1+1), image.NewUniform(c), image.Point{}, draw.Src)
}
