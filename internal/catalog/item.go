// Package catalog loads the ordered collection of projects shown by the
// carousel.
package catalog

import "strings"

// Item is one project card. Image and Link are opaque strings passed
// through to the renderer untouched.
type Item struct {
	ID           string   `toml:"id" yaml:"id" json:"id"`
	Title        string   `toml:"title" yaml:"title" json:"title"`
	Description  string   `toml:"description" yaml:"description" json:"description"`
	Image        string   `toml:"image" yaml:"image" json:"image"`
	Link         string   `toml:"link" yaml:"link" json:"link"`
	Category     string   `toml:"category" yaml:"category" json:"category"`
	Technologies []string `toml:"technologies" yaml:"technologies" json:"technologies"`
}

// clone returns a copy that shares no slices with i.
func (i Item) clone() Item {
	if i.Technologies != nil {
		techs := make([]string, len(i.Technologies))
		copy(techs, i.Technologies)
		i.Technologies = techs
	}
	return i
}

// CategoryKind groups free-form categories into the few kinds the
// renderer has an icon for.
type CategoryKind string

const (
	KindWeb    CategoryKind = "web"
	KindHealth CategoryKind = "health"
	KindOther  CategoryKind = "other"
)

// Kind classifies the item's category.
func (i Item) Kind() CategoryKind {
	switch strings.ToLower(strings.TrimSpace(i.Category)) {
	case "web development":
		return KindWeb
	case "health tech":
		return KindHealth
	default:
		return KindOther
	}
}
