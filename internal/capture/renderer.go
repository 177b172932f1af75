// Package capture растеризация карточки подтверждения в PNG-артефакт.
//
// Замена DOM-скриншота исходного виджета: карточка описывается заголовком
// и строками текста, результат отдаётся UI как картинка подтверждения.
package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyCard возвращается при попытке отрендерить пустую карточку
var ErrEmptyCard = errors.New("capture: card has no content")

// Card содержимое карточки подтверждения
type Card struct {
	Title string
	Lines []string
}

const (
	cardWidth  = 640
	lineHeight = 22
	marginX    = 24
	marginY    = 32
	titleGap   = 14
)

// Renderer растеризатор карточек подтверждения
type Renderer struct {
	face font.Face
}

// NewRenderer создает новый растеризатор
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Render отрисовывает карточку на белом фоне и кодирует её в PNG
func (r *Renderer) Render(card Card) ([]byte, error) {
	if card.Title == "" && len(card.Lines) == 0 {
		return nil, ErrEmptyCard
	}

	height := marginY*2 + titleGap + lineHeight*(len(card.Lines)+1)
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := marginY
	r.drawLine(img, card.Title, marginX, y, color.RGBA{A: 255})
	y += lineHeight + titleGap

	textColor := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	for _, line := range card.Lines {
		r.drawLine(img, line, marginX, y, textColor)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("capture: encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// drawLine отрисовывает одну строку текста с базовой линией в точке (x, y)
func (r *Renderer) drawLine(img draw.Image, text string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
