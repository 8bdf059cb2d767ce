package catalog

import (
	"sort"
	"strings"
)

type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
)

// Filter selects and orders a catalog view. Zero values mean "no filter";
// an empty Sort preserves catalog order.
type Filter struct {
	Category    Category
	Material    Material
	InStockOnly bool
	Sort        Sort
}

func (f Filter) Empty() bool {
	return f.Category == "" && f.Material == "" && !f.InStockOnly
}

// Query applies f to products and returns a new ordered slice. The input is
// never mutated and all sorts are stable, so equal keys keep catalog order.
func Query(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Material != "" && p.Material != f.Material {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}

const (
	minSearchLen     = 2
	maxSearchResults = 5
)

// Search matches q case-insensitively against name, category and material.
// Queries shorter than two characters return nothing; results keep catalog
// order and are capped at five.
func Search(products []Product, q string) []Product {
	if len(q) < minSearchLen {
		return nil
	}
	q = strings.ToLower(q)

	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(string(p.Category), q) ||
			strings.Contains(string(p.Material), q) {
			out = append(out, p)
			if len(out) == maxSearchResults {
				break
			}
		}
	}
	return out
}

// ByCategory keeps catalog order, like the storefront category pages.
func ByCategory(products []Product, c Category) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func Featured(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}
