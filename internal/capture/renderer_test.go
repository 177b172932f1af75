package capture

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesDecodablePNG(t *testing.T) {
	r := NewRenderer()

	data, err := r.Render(Card{
		Title: "Booking Confirmation",
		Lines: []string{
			"Name: Asha Rao",
			"Date: 01 Mar 2026",
			"Amount: Rs 99",
			"Duration: 30 minutes",
			"Paid: Yes",
		},
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, cardWidth, bounds.Dx())
	assert.Greater(t, bounds.Dy(), 0)
}

func TestRender_HeightGrowsWithLines(t *testing.T) {
	r := NewRenderer()

	short, err := r.Render(Card{Title: "Card", Lines: []string{"one"}})
	require.NoError(t, err)
	long, err := r.Render(Card{Title: "Card", Lines: []string{"one", "two", "three"}})
	require.NoError(t, err)

	shortImg, err := png.Decode(bytes.NewReader(short))
	require.NoError(t, err)
	longImg, err := png.Decode(bytes.NewReader(long))
	require.NoError(t, err)

	assert.Greater(t, longImg.Bounds().Dy(), shortImg.Bounds().Dy())
}

func TestRender_EmptyCard(t *testing.T) {
	_, err := NewRenderer().Render(Card{})
	require.ErrorIs(t, err, ErrEmptyCard)
}
