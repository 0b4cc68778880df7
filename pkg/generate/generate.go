// Package generate holds the content-generator contracts the core stores
// results from. The built-in source is offline and deterministic; anything
// network-backed lives behind the same interfaces, outside the core.
package generate

import (
	"context"
	"math"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/store"
)

// Quote is generated motivational copy for an event card.
type Quote struct {
	Text   string
	Author string
}

// Image is a generated background with its credit.
type Image struct {
	URL          string
	Photographer event.Photographer
}

// QuoteSource produces a quote for a theme.
type QuoteSource interface {
	Quote(ctx context.Context, theme string) (Quote, error)
}

// ImageSource produces a background image for a theme.
type ImageSource interface {
	Image(ctx context.Context, theme string) (Image, error)
}

// Refresh fetches fresh content and patches it onto the event by id through
// the store. Patching by id (not index) means a selection change or delete
// that raced the fetch simply drops the result. Either source may be nil.
func Refresh(ctx context.Context, st *store.Store, id, theme string, qs QuoteSource, is ImageSource) error {
	if qs != nil {
		q, err := qs.Quote(ctx, theme)
		if err != nil {
			return err
		}
		st.UpdateByID(id, func(e *event.Event) {
			e.Quote = event.Quote{Text: q.Text, Author: q.Author}
		})
	}
	if is != nil {
		img, err := is.Image(ctx, theme)
		if err != nil {
			return err
		}
		st.UpdateByID(id, func(e *event.Event) {
			url := img.URL
			p := img.Photographer
			e.BgImage = &url
			e.Photographer = &p
		})
	}
	return nil
}

// Seeded is the offline source: the theme hashes to a stable pick, so the
// same theme always gets the same quote and gradient until regenerated with
// a different offset.
type Seeded struct {
	Offset int
}

var seededQuotes = []Quote{
	{Text: "What you do today can improve all your tomorrows.", Author: "Ralph Marston"},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Great things are done by a series of small things brought together.", Author: "Vincent van Gogh"},
	{Text: "A goal without a plan is just a wish.", Author: "Antoine de Saint-Exupéry"},
	{Text: "The days are long, but the years are short.", Author: "Gretchen Rubin"},
}

var seededGradients = []string{
	"gradient://1a2a6c-b21f1f-fdbb2d",
	"gradient://0f2027-203a43-2c5364",
	"gradient://42275a-734b6d",
	"gradient://141e30-243b55",
	"gradient://2c3e50-fd746c",
}

// rand maps a seed pair onto [0,1), the same folded-sine spread the card
// layouts use for decorative jitter.
func rand(i, offset int) float64 {
	v := math.Sin(float64(i)*127.1+float64(offset)*311.7) * 43758.5453
	return v - math.Floor(v)
}

func themeSeed(theme string) int {
	seed := 0
	for _, r := range theme {
		seed = seed*31 + int(r)
	}
	if seed < 0 {
		seed = -seed
	}
	return seed
}

func (s Seeded) Quote(_ context.Context, theme string) (Quote, error) {
	pick := int(rand(themeSeed(theme), s.Offset) * float64(len(seededQuotes)))
	if pick >= len(seededQuotes) {
		pick = len(seededQuotes) - 1
	}
	return seededQuotes[pick], nil
}

func (s Seeded) Image(_ context.Context, theme string) (Image, error) {
	pick := int(rand(themeSeed(theme), s.Offset+1) * float64(len(seededGradients)))
	if pick >= len(seededGradients) {
		pick = len(seededGradients) - 1
	}
	return Image{
		URL:          seededGradients[pick],
		Photographer: event.Photographer{Name: "Generated gradient", URL: "about:blank"},
	}, nil
}
