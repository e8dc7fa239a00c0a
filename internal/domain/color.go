package domain

import (
	"encoding/json"
	"fmt"
)

// Color is a closed set of task tags. The declaration order is the sort
// ordinal: Red sorts before Yellow, Yellow before Green, and so on.
type Color int

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
)

// colorNames holds the display/persisted names, indexed by ordinal.
var colorNames = [...]string{"Red", "Yellow", "Green", "Blue", "Purple"}

// colorTokens maps the case-sensitive CLI tokens to colors.
var colorTokens = map[string]Color{
	"red":    ColorRed,
	"yellow": ColorYellow,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"purple": ColorPurple,
}

// ParseColor parses a CLI color token ("red", "yellow", "green", "blue",
// "purple"). Tokens are case-sensitive; anything else is an error.
func ParseColor(token string) (Color, error) {
	c, ok := colorTokens[token]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", token)
	}
	return c, nil
}

// IsValid returns true if the color is one of the five defined tags.
func (c Color) IsValid() bool {
	return c >= ColorRed && c <= ColorPurple
}

// Ordinal returns the sort ordinal of the color (Red = 0 .. Purple = 4).
func (c Color) Ordinal() int {
	return int(c)
}

// String returns the capitalized tag name.
func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// MarshalJSON encodes the color as its capitalized tag name, matching the
// persisted format ("Red" .. "Purple").
func (c Color) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot encode invalid color %d", int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a capitalized tag name into a color.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range colorNames {
		if n == name {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color name %q", name)
}
