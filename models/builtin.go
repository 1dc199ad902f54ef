package models

// DefaultProductSlug identifies the sample laptop in the built-in catalog
const DefaultProductSlug = "professional-developer-laptop-pro"

// BuiltinData is the sample catalog the store ships with
func BuiltinData() CatalogData {
	return CatalogData{
		Categories: []string{"Hardware", "Software", "Networking", "Accessories"},
		Products: []Product{
			{
				Slug:        DefaultProductSlug,
				Name:        "Professional Developer Laptop Pro",
				PriceCents:  149999,
				Rating:      4.8,
				Reviews:     128,
				Stock:       10,
				Description: "High-performance laptop perfect for development and professional work. Features the latest processor, ample RAM, and fast SSD storage.",
				Specifications: []Spec{
					{Name: "Processor", Value: "Intel Core i7-12700H"},
					{Name: "RAM", Value: "32GB DDR4"},
					{Name: "Storage", Value: "1TB NVMe SSD"},
					{Name: "Display", Value: `15.6" 4K OLED`},
					{Name: "Graphics", Value: "NVIDIA RTX 3060 6GB"},
				},
				Images: []string{
					"/static/img/placeholder-600x400.svg",
					"/static/img/placeholder-600x400.svg",
					"/static/img/placeholder-600x400.svg",
				},
				Features: []string{
					"High-performance processor",
					"Professional-grade graphics",
					"Ultra-fast storage",
					"Premium build quality",
					"Extended battery life",
				},
			},
		},
	}
}

// BuiltinCatalog returns the sample catalog. The data is compiled in and known valid.
func BuiltinCatalog() *MemCatalog {
	mc, err := NewMemCatalog(BuiltinData())
	if err != nil {
		panic(err)
	}
	return mc
}
