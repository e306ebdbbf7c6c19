// Package catalog builds the per-category image lists from the filesystem.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"wardrobe/internal/config"
	"wardrobe/internal/errors"
	"wardrobe/internal/log"

	"github.com/gobwas/glob"
)

// Category is one clothing category and the image paths found for it.
// Items is never modified after Scan returns.
type Category struct {
	Name  string
	Dir   string
	Items []string
}

// Catalog holds every configured category in configuration order.
type Catalog struct {
	Categories []Category
}

// Names returns the category names in order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// Get returns the named category.
func (c *Catalog) Get(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Scanner lists category directories, skipping hidden and ignored files.
type Scanner struct {
	root   string
	ignore []glob.Glob
}

// NewScanner compiles the ignore patterns. Category directories are resolved
// against root unless they are absolute.
func NewScanner(root string, ignore []string) (*Scanner, error) {
	s := &Scanner{root: root}
	for _, pattern := range ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", pattern, errors.InvalidConfig, err)
		}
		s.ignore = append(s.ignore, g)
	}
	return s, nil
}

// FromConfig scans every category named in cfg.
func FromConfig(cfg *config.Config) (*Catalog, error) {
	s, err := NewScanner(cfg.Library.Root, cfg.Library.Ignore)
	if err != nil {
		return nil, err
	}
	return s.Scan(cfg.Categories)
}

// Scan lists every category. An empty category is an error.
func (s *Scanner) Scan(defs []config.CategoryDef) (*Catalog, error) {
	cat := &Catalog{Categories: make([]Category, 0, len(defs))}
	for _, def := range defs {
		items, err := s.list(def.Dir)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errors.NewCategoryError("category has no images", def.Name, errors.EmptyCategory, nil)
		}
		log.LogWithFields(log.F("category", def.Name), log.F("count", len(items))).Debug("scanned category")
		cat.Categories = append(cat.Categories, Category{Name: def.Name, Dir: def.Dir, Items: items})
	}
	return cat, nil
}

func (s *Scanner) list(dir string) ([]string, error) {
	path := dir
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.root, dir)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("category directory not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("failed to read category directory", path, errors.FileAccessDenied, err)
	}

	var items []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || entry.IsDir() {
			continue
		}
		if s.ignored(name) {
			log.Debugf("ignoring %s", filepath.Join(path, name))
			continue
		}
		items = append(items, filepath.Join(path, name))
	}
	return items, nil
}

func (s *Scanner) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
