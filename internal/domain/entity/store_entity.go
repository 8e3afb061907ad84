package entity

import (
	"errors"
	"strings"
)

var ErrStoreNameRequired = errors.New("store name is required")

// Store is a shop with the ordered list of categories (aisles) it carries.
// Categories are always kept lower-cased.
type Store struct {
	ID         string
	Name       string
	Categories []string
}

// StoreOptions carries the optional fields of a Store.
type StoreOptions struct {
	Categories []string
}

func NewStore(name string, opts StoreOptions) (Store, error) {
	if strings.TrimSpace(name) == "" {
		return Store{}, ErrStoreNameRequired
	}
	s := Store{Name: name, Categories: make([]string, 0, len(opts.Categories))}
	for _, c := range opts.Categories {
		s.AddCategory(c)
	}
	return s, nil
}

// AddCategory appends a category, lower-casing it.
func (s *Store) AddCategory(category string) {
	s.Categories = append(s.Categories, NormalizeCategory(category))
}

// NormalizeCategory is the canonical form of a category name.
func NormalizeCategory(category string) string {
	return strings.ToLower(category)
}
