package wardrobe

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Label is the file name and 1-based position, e.g. "jeans.png (2/5)".
func (p Piece) Label() string {
	return fmt.Sprintf("%s (%d/%d)", filepath.Base(p.Path), p.Index+1, p.Total)
}

func (p Piece) String() string {
	return p.Category + ": " + p.Label()
}

func (o Outfit) String() string {
	parts := make([]string, 0, len(o))
	for _, p := range o {
		parts = append(parts, p.Category+"="+filepath.Base(p.Path))
	}
	return strings.Join(parts, " ")
}
