package catalog

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryRings     Category = "rings"
	CategoryNecklaces Category = "necklaces"
	CategoryBracelets Category = "bracelets"
	CategoryEarrings  Category = "earrings"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRings, CategoryNecklaces, CategoryBracelets, CategoryEarrings:
		return true
	}
	return false
}

type Material string

const (
	MaterialSilver925 Material = "silver-925"
	MaterialGold      Material = "gold"
)

func (m Material) Valid() bool {
	return m == MaterialSilver925 || m == MaterialGold
}

// Product is one catalog entry. Prices are whole currency units.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Price       int64     `json:"price"`
	Category    Category  `json:"category"`
	Material    Material  `json:"material"`
	Weight      string    `json:"weight"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	InStock     bool      `json:"in_stock"`
	IsNew       bool      `json:"is_new"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryInfo describes a browsable category for navigation.
type CategoryInfo struct {
	Name        string   `json:"name"`
	Slug        Category `json:"slug"`
	Description string   `json:"description"`
}

func FormatPrice(price int64) string {
	return fmt.Sprintf("$%d", price)
}
