package text

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// Fallback is the ordered list of families tried when none of the
// requested families is registered.
var Fallback = []string{"Arial", "Helvetica", "Segoe UI", "DejaVu Sans", "Liberation Sans", "Noto Sans"}

// Built-in family names.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

var generic = map[string]string{
	"sans-serif": FamilyGo,
	"serif":      FamilyGo,
	"system-ui":  FamilyGo,
	"cursive":    FamilyGo,
	"fantasy":    FamilyGo,
	"monospace":  FamilyGoMono,
}

// key folds a family name for lookup. A Caser keeps state, so each call
// gets its own.
func key(family string) string {
	return cases.Fold().String(strings.TrimSpace(family))
}

// Registry maps family names to fonts. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	fonts    map[string]*Font
	resolved map[string]*Font
	fallback *Font
}

// NewRegistry returns a registry holding the built-in Go fonts.
func NewRegistry() *Registry {
	r := &Registry{
		fonts:    make(map[string]*Font),
		resolved: make(map[string]*Font),
	}
	builtin := []struct {
		family string
		data   []byte
	}{
		{FamilyGo, goregular.TTF},
		{FamilyGo + " Bold", gobold.TTF},
		{FamilyGo + " Italic", goitalic.TTF},
		{FamilyGo + " Bold Italic", gobolditalic.TTF},
		{FamilyGoMono, gomono.TTF},
		{FamilyGoMono + " Bold", gomonobold.TTF},
	}
	for _, b := range builtin {
		if err := r.Register(b.family, b.data); err != nil {
			// The embedded fonts always parse.
			panic(err)
		}
	}
	r.fallback = r.fonts[key(FamilyGo)]
	return r
}

// Register parses data and adds it under family. An empty family uses
// the name stored in the font. Registering an existing family replaces it.
func (r *Registry) Register(family string, data []byte) error {
	f, err := ParseFont(family, data)
	if err != nil {
		return err
	}
	if f.family == "" {
		return fmt.Errorf("%w: font has no family name", ErrInvalidFont)
	}
	r.mu.Lock()
	r.fonts[key(f.family)] = f
	clear(r.resolved)
	r.mu.Unlock()
	Logger().Debug("text: registered font", "family", f.family)
	return nil
}

// LoadDir registers every .ttf and .otf file below dir under its own
// family name. It returns the number of fonts loaded. Files that fail to
// parse are skipped and reported in the returned error.
func (r *Registry) LoadDir(dir string) (int, error) {
	var n int
	var errs []error
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
		default:
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if err := r.Register("", data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		n++
		return nil
	})
	if err != nil {
		return n, err
	}
	if n == 0 && len(errs) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoFont, dir)
	}
	return n, errors.Join(errs...)
}

// Lookup returns the font registered under family, resolving generic
// family names.
func (r *Registry) Lookup(family string) (*Font, bool) {
	k := key(family)
	if g, ok := generic[k]; ok {
		k = key(g)
	}
	r.mu.RLock()
	f, ok := r.fonts[k]
	r.mu.RUnlock()
	return f, ok
}

// Resolve returns the best font for spec. It tries the requested
// families, then Fallback, then Go Regular. Bold and italic prefer a
// registered "<family> Bold", "<family> Italic" or "<family> Bold Italic"
// variant. Resolve never returns nil.
func (r *Registry) Resolve(spec Spec) *Font {
	ck := cacheKey(spec)
	r.mu.RLock()
	f, ok := r.resolved[ck]
	r.mu.RUnlock()
	if ok {
		return f
	}

	f = r.resolve(spec)

	r.mu.Lock()
	r.resolved[ck] = f
	r.mu.Unlock()
	return f
}

func (r *Registry) resolve(spec Spec) *Font {
	for _, fam := range spec.Families {
		if f, ok := r.styled(fam, spec); ok {
			return f
		}
	}
	for _, fam := range Fallback {
		if f, ok := r.styled(fam, spec); ok {
			Logger().Debug("text: using fallback family", "requested", spec.Families, "family", f.family)
			return f
		}
	}
	f, ok := r.styled(FamilyGo, spec)
	if !ok {
		f = r.fallback
	}
	Logger().Warn("text: no requested family available, using default face", "requested", spec.Families, "family", f.family)
	return f
}

func (r *Registry) styled(family string, spec Spec) (*Font, bool) {
	if g, ok := generic[key(family)]; ok {
		family = g
	}
	var variants []string
	switch {
	case spec.Bold && spec.Italic:
		variants = []string{family + " Bold Italic", family + " Bold", family + " Italic"}
	case spec.Bold:
		variants = []string{family + " Bold"}
	case spec.Italic:
		variants = []string{family + " Italic"}
	}
	for _, v := range append(variants, family) {
		if f, ok := r.Lookup(v); ok {
			return f, true
		}
	}
	return nil, false
}

func cacheKey(spec Spec) string {
	var b strings.Builder
	if spec.Bold {
		b.WriteString("b|")
	}
	if spec.Italic {
		b.WriteString("i|")
	}
	for _, f := range spec.Families {
		b.WriteString(key(f))
		b.WriteByte(',')
	}
	return b.String()
}
