package wardrobe

import (
	"fmt"
)

// Rotation is a cursor over a fixed list of image paths. Next and Prev wrap
// at both ends, so Current is always an element of the list.
type Rotation struct {
	items  []string
	cursor int
}

// NewRotation positions the cursor on the first item. items must not be empty.
func NewRotation(items []string) (*Rotation, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("rotation needs at least one item")
	}
	return &Rotation{items: items}, nil
}

func (r *Rotation) Current() string { return r.items[r.cursor] }
func (r *Rotation) Index() int      { return r.cursor }
func (r *Rotation) Len() int        { return len(r.items) }

// Items returns a copy of the underlying list.
func (r *Rotation) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Next advances the cursor, wrapping from the last item to the first.
func (r *Rotation) Next() string {
	r.cursor = (r.cursor + 1) % len(r.items)
	return r.Current()
}

// Prev moves the cursor back, wrapping from the first item to the last.
func (r *Rotation) Prev() string {
	r.cursor = (r.cursor - 1 + len(r.items)) % len(r.items)
	return r.Current()
}

// Select moves the cursor to index i.
func (r *Rotation) Select(i int) error {
	if i < 0 || i >= len(r.items) {
		return fmt.Errorf("index %d out of range [0,%d)", i, len(r.items))
	}
	r.cursor = i
	return nil
}

// SelectPath moves the cursor to the first item equal to path.
func (r *Rotation) SelectPath(path string) error {
	for i, item := range r.items {
		if item == path {
			r.cursor = i
			return nil
		}
	}
	return fmt.Errorf("%s is not in the rotation", path)
}
