package entity

import (
	"errors"
	"strings"
)

var (
	ErrListUserRequired     = errors.New("list owner is required")
	ErrListItemNameRequired = errors.New("list item name is required")
)

// List is a shopping list owned by a user. Items keep insertion order.
//
// UserID references the owner by identifier only; there is no live link
// between a list and its user.
type List struct {
	ID     string
	Name   string
	UserID string
	Items  []ListItem
}

type ListOptions struct {
	Items []ListItem
}

func NewList(name, userID string, opts ListOptions) (List, error) {
	if strings.TrimSpace(userID) == "" {
		return List{}, ErrListUserRequired
	}
	items := make([]ListItem, 0, len(opts.Items))
	items = append(items, opts.Items...)
	return List{Name: name, UserID: userID, Items: items}, nil
}

// AddItem appends item after the existing ones.
func (l *List) AddItem(item ListItem) {
	l.Items = append(l.Items, item)
}

// ListItem is one line of a shopping list. Category and Amount are optional;
// Amount is free-form ("2lb", "1", "a few").
type ListItem struct {
	Name     string
	Category *string
	Amount   *string
}

type ListItemOptions struct {
	Category string
	Amount   string
}

// NewListItem builds an item. Empty option fields are left unset and a
// category, when given, is lower-cased.
func NewListItem(name string, opts ListItemOptions) (ListItem, error) {
	if strings.TrimSpace(name) == "" {
		return ListItem{}, ErrListItemNameRequired
	}
	item := ListItem{Name: name}
	if opts.Category != "" {
		c := NormalizeCategory(opts.Category)
		item.Category = &c
	}
	if opts.Amount != "" {
		a := opts.Amount
		item.Amount = &a
	}
	return item, nil
}

// CategoryOrEmpty returns the category or "" when unset.
func (i ListItem) CategoryOrEmpty() string {
	if i.Category == nil {
		return ""
	}
	return *i.Category
}

// AmountOrEmpty returns the amount or "" when unset.
func (i ListItem) AmountOrEmpty() string {
	if i.Amount == nil {
		return ""
	}
	return *i.Amount
}
