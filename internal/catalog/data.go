package catalog

import "time"

// Seed returns the curated catalog in display order. The slice is freshly
// allocated on each call so callers may not corrupt the canonical data.
func Seed() []Product {
	products := []Product{
		{
			ID:          "1",
			Name:        "Eternity Band",
			Slug:        "eternity-band",
			Price:       89,
			Category:    CategoryRings,
			Material:    MaterialSilver925,
			Weight:      "3.2g",
			Description: "A timeless silver 925 eternity band with delicate channel-set stones. Crafted for everyday elegance, this ring pairs effortlessly with any look.",
			Images:      []string{"/images/products/ring-silver-1.jpg"},
			InStock:     true,
			IsFeatured:  true,
			CreatedAt:   date(2025, 12, 1),
		},
		{
			ID:          "2",
			Name:        "Signet Ring",
			Slug:        "signet-ring",
			Price:       245,
			Category:    CategoryRings,
			Material:    MaterialGold,
			Weight:      "5.8g",
			Description: "A bold yet refined gold signet ring. Its smooth oval face and tapered band make it a modern classic for those who appreciate understated luxury.",
			Images:      []string{"/images/products/ring-gold-1.jpg"},
			InStock:     true,
			IsNew:       true,
			IsFeatured:  true,
			CreatedAt:   date(2026, 1, 15),
		},
		{
			ID:          "3",
			Name:        "Solitaire Pendant",
			Slug:        "solitaire-pendant",
			Price:       195,
			Category:    CategoryNecklaces,
			Material:    MaterialGold,
			Weight:      "2.1g",
			Description: "A delicate gold chain with a single prong-set stone pendant. Minimal and luminous, the perfect layering piece or standalone statement.",
			Images:      []string{"/images/products/necklace-gold-1.jpg"},
			InStock:     true,
			IsFeatured:  true,
			CreatedAt:   date(2025, 11, 20),
		},
		{
			ID:          "4",
			Name:        "Layering Chain",
			Slug:        "layering-chain",
			Price:       65,
			Category:    CategoryNecklaces,
			Material:    MaterialSilver925,
			Weight:      "1.8g",
			Description: "A fine silver 925 chain designed for layering. Worn alone or stacked with other pieces, its understated design adds effortless elegance.",
			Images:      []string{"/images/products/necklace-silver-1.jpg"},
			InStock:     true,
			CreatedAt:   date(2025, 10, 10),
		},
		{
			ID:          "5",
			Name:        "Curb Chain Bracelet",
			Slug:        "curb-chain-bracelet",
			Price:       78,
			Category:    CategoryBracelets,
			Material:    MaterialSilver925,
			Weight:      "8.5g",
			Description: "A substantial silver 925 curb chain bracelet with a polished finish. Its bold links create a confident, contemporary look.",
			Images:      []string{"/images/products/bracelet-silver-1.jpg"},
			InStock:     true,
			IsNew:       true,
			IsFeatured:  true,
			CreatedAt:   date(2026, 2, 1),
		},
		{
			ID:          "6",
			Name:        "Wave Bangle",
			Slug:        "wave-bangle",
			Price:       320,
			Category:    CategoryBracelets,
			Material:    MaterialGold,
			Weight:      "12.3g",
			Description: "An exquisite gold bangle with a flowing wave pattern set with pave stones. A sculptural piece that catches the light from every angle.",
			Images:      []string{"/images/products/bracelet-gold-1.jpg"},
			InStock:     true,
			IsFeatured:  true,
			CreatedAt:   date(2025, 9, 15),
		},
		{
			ID:          "7",
			Name:        "Geometric Studs",
			Slug:        "geometric-studs",
			Price:       52,
			Category:    CategoryEarrings,
			Material:    MaterialSilver925,
			Weight:      "1.4g",
			Description: "Minimalist silver 925 stud earrings with a geometric diamond shape. Small but impactful, ideal for everyday wear.",
			Images:      []string{"/images/products/earrings-silver-1.jpg"},
			InStock:     true,
			CreatedAt:   date(2025, 8, 20),
		},
		{
			ID:          "8",
			Name:        "Classic Hoops",
			Slug:        "classic-hoops",
			Price:       185,
			Category:    CategoryEarrings,
			Material:    MaterialGold,
			Weight:      "4.6g",
			Description: "Timeless gold hoop earrings with a smooth, polished finish. Their medium size makes them versatile for both casual and formal occasions.",
			Images:      []string{"/images/products/earrings-gold-1.jpg"},
			InStock:     true,
			IsNew:       true,
			IsFeatured:  true,
			CreatedAt:   date(2026, 1, 28),
		},
		{
			ID:          "9",
			Name:        "Twisted Ring",
			Slug:        "twisted-ring",
			Price:       72,
			Category:    CategoryRings,
			Material:    MaterialSilver925,
			Weight:      "2.9g",
			Description: "A silver 925 ring with a beautiful twisted design. Subtle texture adds character to this minimalist piece.",
			Images:      []string{"/images/products/ring-silver-1.jpg"},
			InStock:     false,
			CreatedAt:   date(2025, 7, 5),
		},
		{
			ID:          "10",
			Name:        "Drop Earrings",
			Slug:        "drop-earrings",
			Price:       156,
			Category:    CategoryEarrings,
			Material:    MaterialGold,
			Weight:      "3.2g",
			Description: "Elegant gold drop earrings that catch the light with every movement. A sophisticated choice for evening wear.",
			Images:      []string{"/images/products/earrings-gold-1.jpg"},
			InStock:     true,
			CreatedAt:   date(2025, 11, 1),
		},
		{
			ID:          "11",
			Name:        "Pearl Pendant",
			Slug:        "pearl-pendant",
			Price:       210,
			Category:    CategoryNecklaces,
			Material:    MaterialGold,
			Weight:      "3.5g",
			Description: "A luminous gold necklace featuring a single cultured pearl pendant. The ultimate expression of timeless femininity.",
			Images:      []string{"/images/products/necklace-gold-1.jpg"},
			InStock:     true,
			IsNew:       true,
			CreatedAt:   date(2026, 2, 10),
		},
		{
			ID:          "12",
			Name:        "Cuff Bracelet",
			Slug:        "cuff-bracelet",
			Price:       95,
			Category:    CategoryBracelets,
			Material:    MaterialSilver925,
			Weight:      "15.0g",
			Description: "A sleek silver 925 cuff bracelet with a polished finish. Its open design allows for a comfortable, adjustable fit.",
			Images:      []string{"/images/products/bracelet-silver-1.jpg"},
			InStock:     true,
			CreatedAt:   date(2025, 10, 25),
		},
	}

	return products
}

// Categories returns the browsable category descriptors in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Name: "Rings", Slug: CategoryRings, Description: "Timeless bands and statement pieces"},
		{Name: "Necklaces", Slug: CategoryNecklaces, Description: "Chains, pendants, and layering essentials"},
		{Name: "Bracelets", Slug: CategoryBracelets, Description: "Cuffs, bangles, and chain bracelets"},
		{Name: "Earrings", Slug: CategoryEarrings, Description: "Studs, hoops, and drop earrings"},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
