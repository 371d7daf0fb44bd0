package content

// Defaults is the site content shown until (and wherever) the backend
// document says otherwise.
func Defaults() Document {
	return Document{
		"hero": map[string]any{
			"slides": []any{
				map[string]any{
					"title":    "Timeless Gold",
					"subtitle": "Handcrafted 22K jewellery for every occasion",
					"image":    "/uploads/hero/gold.jpg",
					"cta":      map[string]any{"label": "Shop Gold", "href": "/collections/gold"},
				},
				map[string]any{
					"title":    "Sterling Silver",
					"subtitle": "Everyday elegance in 925 silver",
					"image":    "/uploads/hero/silver.jpg",
					"cta":      map[string]any{"label": "Shop Silver", "href": "/collections/silver"},
				},
			},
			"autoplayMs": float64(5000),
		},
		"categories": map[string]any{
			"title": "Shop by Category",
			"items": []any{
				map[string]any{"name": "Rings", "slug": "rings", "image": "/uploads/categories/rings.jpg"},
				map[string]any{"name": "Necklaces", "slug": "necklaces", "image": "/uploads/categories/necklaces.jpg"},
				map[string]any{"name": "Earrings", "slug": "earrings", "image": "/uploads/categories/earrings.jpg"},
				map[string]any{"name": "Bangles", "slug": "bangles", "image": "/uploads/categories/bangles.jpg"},
			},
		},
		"testimonials": map[string]any{
			"title": "What our customers say",
			"items": []any{},
		},
		"about": map[string]any{
			"title": "Vardhaman Jewellers",
			"body":  "Trusted jewellers since 1985.",
		},
		"footer": map[string]any{
			"links": []any{
				map[string]any{"label": "About", "href": "/about"},
				map[string]any{"label": "Contact", "href": "/contact"},
				map[string]any{"label": "Shipping Policy", "href": "/policies/shipping"},
			},
			"contact": map[string]any{
				"phone": "",
				"email": "",
			},
			"copyright": "Vardhaman Jewellers",
		},
	}
}
