package text

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed font file. It is immutable and safe for concurrent use.
type Font struct {
	family string
	sfnt   *opentype.Font
	shaper *gotext.Font
}

// ParseFont parses TrueType or OpenType data. family overrides the name
// recorded in the font; pass "" to use the font's own family name.
func ParseFont(family string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	gf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	if family == "" {
		if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
			family = name
		}
	}
	return &Font{family: family, sfnt: sf, shaper: gf.Font}, nil
}

// Family returns the family name the font was registered under.
func (f *Font) Family() string {
	return f.family
}

// Face returns the font at the given pixel size. Non-positive sizes are
// replaced by DefaultSize.
func (f *Font) Face(size float64) *Face {
	if !(size > 0) {
		size = DefaultSize
	}
	return &Face{font: f, size: size}
}
