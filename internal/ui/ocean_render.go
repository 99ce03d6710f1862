package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/game"
	"github.com/fogleman/gg"
)

const maxFish = 9

// renderOceanANSI draws a cross-section of the ocean: water tinted by
// toxicity, a sludge layer on the sea bed and one fish per band of marine
// life. Each terminal row holds two pixel rows.
func renderOceanANSI(s game.Stats, widthChars, heightRows int) string {
	if widthChars < 16 || heightRows < 6 {
		return oceanASCII(s)
	}

	widthChars = clampInt(widthChars, 16, 72)
	heightRows = clampInt(heightRows, 6, 24)

	w := widthChars
	h := heightRows * 2
	dc := gg.NewContext(w, h)

	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	tox := clampFloat(s.OceanToxicity/100, 0, 1)
	surfaceY := float64(h) * 0.18

	// Water column.
	top, bottom := waterColors(tox)
	grad := gg.NewLinearGradient(0, surfaceY, 0, float64(h))
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, surfaceY, float64(w), float64(h)-surfaceY)
	dc.Fill()

	// Surface swell.
	dc.SetRGBA(0.75, 0.9, 1, 0.55)
	dc.SetLineWidth(1)
	for x := 0; x < w; x++ {
		y := surfaceY + math.Sin(float64(x)/3)*0.8
		dc.DrawPoint(float64(x), y, 0.6)
	}
	dc.Fill()

	// Sludge builds up from the sea bed as toxicity rises.
	sludge := lerp(1, float64(h)*0.45, tox)
	dc.SetRGBA(0.35, 0.3, 0.12, lerp(0.35, 0.9, tox))
	dc.DrawRectangle(0, float64(h)-sludge, float64(w), sludge)
	dc.Fill()

	// Fish at fixed slots so the picture only changes with the stats.
	fish := fishCount(s.FishHealth)
	dc.SetColor(color.RGBA{R: 255, G: 196, B: 64, A: 235})
	for i := 0; i < fish; i++ {
		fx := float64(w) * (0.1 + 0.8*float64(i)/float64(maxFish))
		fy := surfaceY + (float64(h)-surfaceY-sludge)*(0.25+0.5*math.Abs(math.Sin(float64(i)*1.7)))
		dc.DrawEllipse(fx, fy, 1.6, 0.9)
		dc.Fill()
		dc.MoveTo(fx-1.4, fy)
		dc.LineTo(fx-2.6, fy-0.9)
		dc.LineTo(fx-2.6, fy+0.9)
		dc.ClosePath()
		dc.Fill()
	}

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

// waterColors runs from clear blue to murky green-brown.
func waterColors(tox float64) (top, bottom color.RGBA) {
	clearTop := color.RGBA{R: 40, G: 150, B: 220, A: 255}
	clearBottom := color.RGBA{R: 8, G: 40, B: 95, A: 255}
	foulTop := color.RGBA{R: 110, G: 120, B: 60, A: 255}
	foulBottom := color.RGBA{R: 45, G: 40, B: 20, A: 255}
	return mixRGBA(clearTop, foulTop, tox), mixRGBA(clearBottom, foulBottom, tox)
}

func mixRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clampFloat(t, 0, 1)
	return color.RGBA{
		R: uint8(math.Round(lerp(float64(a.R), float64(b.R), t))),
		G: uint8(math.Round(lerp(float64(a.G), float64(b.G), t))),
		B: uint8(math.Round(lerp(float64(a.B), float64(b.B), t))),
		A: uint8(math.Round(lerp(float64(a.A), float64(b.A), t))),
	}
}

func fishCount(fishHealth float64) int {
	n := int(math.Ceil(clampFloat(fishHealth, 0, 100) / 100 * maxFish))
	return clampInt(n, 0, maxFish)
}

func oceanASCII(s game.Stats) string {
	fish := strings.Repeat("><> ", fishCount(s.FishHealth))
	return fmt.Sprintf("~~~~~~~~~~~~~~~~\n%s\ntoxicity %.0f%%\n", strings.TrimSpace(fish), s.OceanToxicity)
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			out.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb))
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Min(maxV, math.Max(minV, v))
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
