// Package wardrobe holds the current selection for each clothing category and
// the navigation over it: cyclic next/prev and random outfits.
package wardrobe

import (
	"math/rand/v2"

	"wardrobe/internal/catalog"
	"wardrobe/internal/errors"
	"wardrobe/internal/log"
)

// Randomizer picks an index in [0, n).
type Randomizer interface {
	IntN(n int) int
}

// Piece is the selection for one category.
type Piece struct {
	Category string
	Path     string
	Index    int
	Total    int
}

// Outfit is one piece per category, in category order.
type Outfit []Piece

// Path returns the path chosen for category, or "" if absent.
func (o Outfit) Path(category string) string {
	for _, p := range o {
		if p.Category == category {
			return p.Path
		}
	}
	return ""
}

// Wardrobe is not safe for concurrent use; it is driven from the UI event loop.
type Wardrobe struct {
	names     []string
	rotations map[string]*Rotation
	rnd       Randomizer
}

// Option configures a Wardrobe.
type Option func(*Wardrobe)

// WithRand sets the source used by CreateOutfit.
func WithRand(r Randomizer) Option {
	return func(w *Wardrobe) {
		w.rnd = r
	}
}

// New builds a wardrobe with every category positioned on its first item.
func New(cat *catalog.Catalog, opts ...Option) (*Wardrobe, error) {
	w := &Wardrobe{
		rotations: make(map[string]*Rotation, len(cat.Categories)),
		rnd:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, c := range cat.Categories {
		r, err := NewRotation(c.Items)
		if err != nil {
			return nil, errors.NewCategoryError("category has no images", c.Name, errors.EmptyCategory, err)
		}
		w.names = append(w.names, c.Name)
		w.rotations[c.Name] = r
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Categories returns the category names in display order.
func (w *Wardrobe) Categories() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Rotation returns the rotation for category.
func (w *Wardrobe) Rotation(category string) (*Rotation, error) {
	r, ok := w.rotations[category]
	if !ok {
		return nil, errors.NewCategoryError("unknown category", category, errors.UnknownCategory, nil)
	}
	return r, nil
}

// Current returns the selected path for category.
func (w *Wardrobe) Current(category string) (string, error) {
	r, err := w.Rotation(category)
	if err != nil {
		return "", err
	}
	return r.Current(), nil
}

// Next advances category and returns the new selection.
func (w *Wardrobe) Next(category string) (string, error) {
	r, err := w.Rotation(category)
	if err != nil {
		return "", err
	}
	path := r.Next()
	log.LogWithFields(log.F("category", category), log.F("index", r.Index())).Debug("next")
	return path, nil
}

// Prev moves category back and returns the new selection.
func (w *Wardrobe) Prev(category string) (string, error) {
	r, err := w.Rotation(category)
	if err != nil {
		return "", err
	}
	path := r.Prev()
	log.LogWithFields(log.F("category", category), log.F("index", r.Index())).Debug("prev")
	return path, nil
}

// Outfit returns the current selection of every category.
func (w *Wardrobe) Outfit() Outfit {
	outfit := make(Outfit, 0, len(w.names))
	for _, name := range w.names {
		r := w.rotations[name]
		outfit = append(outfit, Piece{Category: name, Path: r.Current(), Index: r.Index(), Total: r.Len()})
	}
	return outfit
}

// CreateOutfit picks a uniformly random item in every category and makes it
// the current selection, so Next and Prev continue from what is shown.
func (w *Wardrobe) CreateOutfit() Outfit {
	for _, name := range w.names {
		r := w.rotations[name]
		// Select cannot fail: IntN stays within [0, Len).
		_ = r.Select(w.rnd.IntN(r.Len()))
	}
	outfit := w.Outfit()
	log.LogWithFields(log.F("outfit", outfit.String())).Debug("created outfit")
	return outfit
}
