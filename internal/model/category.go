package model

import "time"

// Category represents a spending category a user can file expenses under.
type Category struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	ID        int       `json:"id"`
	IsActive  bool      `json:"is_active"`
}

// DefaultCategories are seeded into a fresh store. They match the canonical
// set the synonym and keyword tables normalize toward.
func DefaultCategories() []string {
	return []string{
		"Food",
		"Transport",
		"Shopping",
		"Entertainment",
		"Health",
		"Education",
		"Bills",
		"Groceries",
		"Other",
	}
}

// CategoryNames extracts the name of each category, preserving order.
func CategoryNames(categories []Category) []string {
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	return names
}
