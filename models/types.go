package models

// PaletteSize is the number of accent colors a palette must carry
const PaletteSize = 5

// Palette is one parsed model reply: a background color, five accent colors
// and a short theme name. Hex values are normalized to "#RRGGBB" or "#RGB".
// Palette is a plain comparable value; a new request replaces it wholesale.
type Palette struct {
	Background string              `json:"background"`
	Colors     [PaletteSize]string `json:"palette"`
	Theme      string              `json:"theme"`
}

// IsZero reports whether p carries no data
func (p Palette) IsZero() bool {
	return p == Palette{}
}
