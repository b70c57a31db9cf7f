package text

import (
	"math"
	"strconv"
	"strings"
)

// DefaultSize is the font size, in pixels, of a fresh canvas.
const DefaultSize = 12

// DefaultFamily is the family requested by a fresh canvas.
const DefaultFamily = "Arial"

// Spec is a parsed font shorthand.
type Spec struct {
	Size     float64
	Families []string
	Bold     bool
	Italic   bool
}

// DefaultSpec returns the font a canvas starts with.
func DefaultSpec() Spec {
	return Spec{Size: DefaultSize, Families: []string{DefaultFamily}}
}

// String formats the spec in CSS font shorthand.
func (s Spec) String() string {
	var b strings.Builder
	if s.Italic {
		b.WriteString("italic ")
	}
	if s.Bold {
		b.WriteString("bold ")
	}
	b.WriteString(strconv.FormatFloat(s.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(strings.Join(s.Families, ", "))
	return b.String()
}

// ParseFontSpec parses a CSS-like font shorthand such as
// "bold 16px Helvetica, sans-serif" and applies it on top of cur.
//
// The size token is the first number carrying a px or pt suffix, or
// failing that the first bare number. pt sizes are converted to pixels.
// A "/line-height" suffix is ignored. Keywords before the size select
// bold and italic. Everything after the size is a comma-separated family
// list. When no size token is present the whole string is taken as the
// family list and the size is left unchanged.
func ParseFontSpec(spec string, cur Spec) Spec {
	out := cur
	out.Families = append([]string(nil), cur.Families...)

	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return out
	}

	idx, size := sizeToken(fields)
	if idx < 0 {
		if fams := splitFamilies(spec); len(fams) > 0 {
			out.Families = fams
		}
		return out
	}

	out.Size = size
	out.Bold, out.Italic = false, false
	for _, f := range fields[:idx] {
		switch strings.ToLower(f) {
		case "bold", "bolder":
			out.Bold = true
		case "italic", "oblique":
			out.Italic = true
		default:
			if w, err := strconv.Atoi(f); err == nil && w >= 600 {
				out.Bold = true
			}
		}
	}
	if fams := splitFamilies(strings.Join(fields[idx+1:], " ")); len(fams) > 0 {
		out.Families = fams
	}
	return out
}

// sizeToken returns the index and pixel size of the size token, or -1.
func sizeToken(fields []string) (int, float64) {
	bare := -1
	var bareSize float64
	for i, f := range fields {
		v, unit, ok := parseLength(f)
		if !ok {
			continue
		}
		if unit != "" {
			return i, v
		}
		if bare < 0 {
			bare, bareSize = i, v
		}
	}
	return bare, bareSize
}

// parseLength parses "16", "16px", "12pt" or "16px/1.2".
func parseLength(tok string) (float64, string, bool) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	lower := strings.ToLower(tok)
	unit := ""
	switch {
	case strings.HasSuffix(lower, "px"):
		unit, lower = "px", strings.TrimSuffix(lower, "px")
	case strings.HasSuffix(lower, "pt"):
		unit, lower = "pt", strings.TrimSuffix(lower, "pt")
	}
	v, err := strconv.ParseFloat(lower, 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return 0, "", false
	}
	if unit == "pt" {
		v *= 4.0 / 3.0
	}
	return v, unit, true
}

func splitFamilies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
