package raster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Figure size shared by every chart: 10x6 inches at 100 dpi.
const (
	Width  = 1000
	Height = 600
)

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

// Font returns the parsed Go Regular font.
func Font() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return goFont, fontErr
}

// Face returns a font face of the given point size.
func Face(size float64) (font.Face, error) {
	f, err := Font()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// WritePNG creates outPNG (and its directory) and hands the open file to
// render. The file is closed whether or not render succeeds.
func WritePNG(outPNG string, render func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(outPNG), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPNG)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(outPNG), err)
	}
	return f.Close()
}

// Placeholder draws a titled white figure saying there is nothing to plot.
func Placeholder(w io.Writer, title string) error {
	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0.2, 0.2, 0.2)

	if err := DrawTitle(dc, title); err != nil {
		return err
	}
	face, err := Face(18)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.DrawStringAnchored("No data", Width/2, Height/2, 0.5, 0.5)
	return dc.EncodePNG(w)
}

// DrawTitle writes title centered at the top of the canvas.
func DrawTitle(dc *gg.Context, title string) error {
	if title == "" {
		return nil
	}
	face, err := Face(20)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.DrawStringAnchored(title, float64(dc.Width())/2, TitleBand/2, 0.5, 0.5)
	return nil
}

// TitleBand is the height reserved above the plot area for the title.
const TitleBand = 48
