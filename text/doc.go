// Package text resolves CSS-like font specs to faces, shapes strings and
// produces glyph outlines for the canvas.
//
// The pipeline has three parts:
//
//   - Registry: named font families, the built-in Go fonts and the
//     fallback chain used when a family is unknown
//   - Font: a parsed font file, shared and safe for concurrent use
//   - Face: a Font at a pixel size; shapes, measures and outlines text
//
// Parsing and outlines use golang.org/x/image/font/sfnt. Shaping uses
// HarfBuzz from github.com/go-text/typesetting, so kerning and
// ligatures are reflected in measured widths.
//
// # Example usage
//
//	reg := text.NewRegistry()
//	spec := text.ParseFontSpec("bold 24px Arial, sans-serif", text.DefaultSpec())
//	face := reg.Resolve(spec).Face(spec.Size)
//	width := face.Measure("Hello")
//
// Resolve never fails: unknown families fall through the fallback list
// and finally to Go Regular.
package text
