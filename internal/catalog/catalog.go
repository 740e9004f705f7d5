package catalog

import (
	"fmt"
	"strings"
)

// Catalog is an immutable ordered sequence of items.
type Catalog struct {
	items  []Item
	source string
}

// New builds a catalog from items. The slice is copied.
func New(source string, items []Item) *Catalog {
	copied := make([]Item, len(items))
	for i, item := range items {
		copied[i] = item.clone()
	}
	return &Catalog{items: copied, source: source}
}

// Len returns the number of items. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns a copy of the item at i.
func (c *Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= c.Len() {
		return Item{}, false
	}
	return c.items[i].clone(), true
}

// Items returns a copy of every item in order.
func (c *Catalog) Items() []Item {
	out := make([]Item, c.Len())
	for i := range out {
		out[i] = c.items[i].clone()
	}
	return out
}

// Source describes where the catalog came from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Problem is a single validation finding.
type Problem struct {
	Index   int
	ID      string
	Message string
}

func (p Problem) String() string {
	if p.ID != "" {
		return fmt.Sprintf("item %d (%s): %s", p.Index+1, p.ID, p.Message)
	}
	return fmt.Sprintf("item %d: %s", p.Index+1, p.Message)
}

// Validate reports structural problems. Links and images are not checked.
func (c *Catalog) Validate() []Problem {
	if c == nil {
		return nil
	}
	var problems []Problem
	seen := make(map[string]int, c.Len())
	for i, item := range c.items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			problems = append(problems, Problem{Index: i, Message: "missing id"})
		} else if first, dup := seen[id]; dup {
			problems = append(problems, Problem{Index: i, ID: id, Message: fmt.Sprintf("duplicate id, first used by item %d", first+1)})
		} else {
			seen[id] = i
		}
		if strings.TrimSpace(item.Title) == "" {
			problems = append(problems, Problem{Index: i, ID: id, Message: "missing title"})
		}
	}
	return problems
}
