package wordcloud

import (
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/forPelevin/tsvreport/internal/ports/adapters/raster"
	"github.com/forPelevin/tsvreport/internal/types"
)

const (
	defaultMaxWords = 150
	minFontSize     = 10.0
	maxFontSize     = 110.0
	shrink          = 0.8
	margin          = 2.0
	spiralGap       = 6.0
)

var palette = []color.Color{
	color.RGBA{0x44, 0x01, 0x54, 0xff},
	color.RGBA{0x3b, 0x52, 0x8b, 0xff},
	color.RGBA{0x21, 0x91, 0x8c, 0xff},
	color.RGBA{0x5e, 0xc9, 0x62, 0xff},
	color.RGBA{0x31, 0x68, 0x8e, 0xff},
	color.RGBA{0x44, 0x39, 0x83, 0xff},
	color.RGBA{0x28, 0xae, 0x80, 0xff},
	color.RGBA{0x90, 0xd7, 0x43, 0xff},
}

type Adapter struct {
	maxWords int
}

func New() *Adapter { return &Adapter{maxWords: defaultMaxWords} }

// Render draws a frequency-weighted word cloud on a white figure.
func (a *Adapter) Render(outPNG, title string, counts []types.Count) error {
	return raster.WritePNG(outPNG, func(w io.Writer) error {
		if len(counts) == 0 {
			return raster.Placeholder(w, title)
		}

		dc := gg.NewContext(raster.Width, raster.Height)
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		dc.SetRGB(0, 0, 0)
		if err := raster.DrawTitle(dc, title); err != nil {
			return err
		}

		faces := faceCache{}
		measure := func(word string, size float64) (float64, float64, error) {
			face, err := faces.get(size)
			if err != nil {
				return 0, 0, err
			}
			dc.SetFontFace(face)
			w, h := dc.MeasureString(word)
			return w, h, nil
		}
		area := rect{X: 0, Y: raster.TitleBand, W: raster.Width, H: raster.Height - raster.TitleBand}

		placed, err := layout(counts, area, a.maxWords, measure)
		if err != nil {
			return err
		}
		for i, p := range placed {
			face, err := faces.get(p.Size)
			if err != nil {
				return err
			}
			dc.SetFontFace(face)
			dc.SetColor(palette[i%len(palette)])
			dc.DrawStringAnchored(p.Word, p.Box.X+p.Box.W/2, p.Box.Y+p.Box.H/2, 0.5, 0.5)
		}
		return dc.EncodePNG(w)
	})
}

type faceCache map[int]font.Face

// get returns a face for size rounded to whole points.
func (c faceCache) get(size float64) (font.Face, error) {
	key := int(math.Round(size))
	if f, ok := c[key]; ok {
		return f, nil
	}
	f, err := raster.Face(float64(key))
	if err != nil {
		return nil, err
	}
	c[key] = f
	return f, nil
}

type rect struct {
	X, Y, W, H float64
}

func (r rect) overlaps(o rect) bool {
	return r.X < o.X+o.W+margin && o.X < r.X+r.W+margin &&
		r.Y < o.Y+o.H+margin && o.Y < r.Y+r.H+margin
}

func (r rect) within(o rect) bool {
	return r.X >= o.X && r.Y >= o.Y && r.X+r.W <= o.X+o.W && r.Y+r.H <= o.Y+o.H
}

type placement struct {
	Word string
	Size float64
	Box  rect
}

type measureFunc func(word string, size float64) (w, h float64, err error)

// layout places the most frequent words first, starting at the centre of area
// and walking outwards on an Archimedean spiral. A word that does not fit is
// retried at a smaller size and dropped below minFontSize.
func layout(counts []types.Count, area rect, maxWords int, measure measureFunc) ([]placement, error) {
	ranked := make([]types.Count, 0, len(counts))
	for _, c := range counts {
		if c.N > 0 {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].N > ranked[j].N })
	if maxWords > 0 && len(ranked) > maxWords {
		ranked = ranked[:maxWords]
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	top := float64(ranked[0].N)
	var out []placement
	for _, c := range ranked {
		size := minFontSize + (maxFontSize-minFontSize)*float64(c.N)/top
		for size >= minFontSize {
			w, h, err := measure(c.Key, size)
			if err != nil {
				return nil, err
			}
			if box, ok := findSpot(w, h, area, out); ok {
				out = append(out, placement{Word: c.Key, Size: size, Box: box})
				break
			}
			size *= shrink
		}
	}
	return out, nil
}

func findSpot(w, h float64, area rect, placed []placement) (rect, bool) {
	if w > area.W || h > area.H {
		return rect{}, false
	}
	cx := area.X + area.W/2
	cy := area.Y + area.H/2
	maxR := math.Hypot(area.W, area.H) / 2
	aspect := area.W / area.H

	for t := 0.0; ; {
		r := spiralGap * t / (2 * math.Pi)
		if r > maxR {
			return rect{}, false
		}
		box := rect{
			X: cx + r*math.Cos(t)*aspect - w/2,
			Y: cy + r*math.Sin(t) - h/2,
			W: w,
			H: h,
		}
		if box.within(area) && !collides(box, placed) {
			return box, true
		}
		// Step roughly spiralGap pixels along the curve.
		t += spiralGap / math.Max(r, spiralGap)
	}
}

func collides(box rect, placed []placement) bool {
	for _, p := range placed {
		if box.overlaps(p.Box) {
			return true
		}
	}
	return false
}
