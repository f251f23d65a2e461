package config

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pair holds the day and night variants of a color.
type Pair struct {
	Day   colorful.Color
	Night colorful.Color
}

func (p Pair) Pick(night bool) colorful.Color {
	if night {
		return p.Night
	}
	return p.Day
}

func Same(c colorful.Color) Pair {
	return Pair{Day: c, Night: c}
}

type Theme struct {
	Tint                 Pair
	MenuBackground       Pair
	MenuText             Pair
	MenuTextSelected     Pair
	MenuSeparator        Pair
	Background           Pair
	NavigationBackground Pair

	mediaOverlay *colorful.Color
}

// MediaOverlay is the color of the sentence highlighted during audio
// playback. Unless overridden it follows the current day tint.
func (t *Theme) MediaOverlay() colorful.Color {
	if t.mediaOverlay != nil {
		return *t.mediaOverlay
	}
	return t.Tint.Day
}

func (t *Theme) SetMediaOverlay(c colorful.Color) {
	t.mediaOverlay = &c
}

// ResetMediaOverlay makes the overlay follow the tint again.
func (t *Theme) ResetMediaOverlay() {
	t.mediaOverlay = nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func defaultTheme() Theme {
	tint := mustHex("#6ACC50")
	white := mustHex("#FFFFFF")
	dark := mustHex("#131313")
	return Theme{
		Tint:                 Same(tint),
		MenuBackground:       Pair{Day: white, Night: mustHex("#1E1E1E")},
		MenuText:             Same(mustHex("#767676")),
		MenuTextSelected:     Same(tint),
		MenuSeparator:        Pair{Day: mustHex("#D7D7D7"), Night: mustHex("#808080")},
		Background:           Pair{Day: white, Night: dark},
		NavigationBackground: Pair{Day: white, Night: dark},
	}
}
