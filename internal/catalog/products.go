package catalog

// pexels builds the image reference for a sample product photo.
func pexels(photoID string) string {
	return "https://images.pexels.com/photos/" + photoID + "/pexels-photo-" + photoID +
		".jpeg?auto=compress&cs=tinysrgb&w=600"
}

// Products returns the marketplace listings in catalog order.
func Products() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Bamboo Toothbrush Set",
			Description: "Pack of 4 biodegradable bamboo toothbrushes",
			Price:       12.99,
			Rating:      4.8,
			Reviews:     124,
			ImageRef:    pexels("3737599"),
			Category:    ProductPersonal,
			EcoScore:    9.2,
			Badges:      []string{"Plastic-Free", "Biodegradable"},
		},
		{
			ID:          2,
			Name:        "Reusable Produce Bags",
			Description: "Set of 8 mesh bags for grocery shopping",
			Price:       16.50,
			Rating:      4.6,
			Reviews:     89,
			ImageRef:    pexels("5218022"),
			Category:    ProductKitchen,
			EcoScore:    8.8,
			Badges:      []string{"Zero-Waste", "Washable"},
		},
		{
			ID:          3,
			Name:        "Solar Power Bank",
			Description: "20000mAh battery with solar charging capability",
			Price:       45.99,
			Rating:      4.3,
			Reviews:     210,
			ImageRef:    pexels("6636487"),
			Category:    ProductTech,
			EcoScore:    7.5,
			Badges:      []string{"Renewable Energy", "Long-Lasting"},
		},
		{
			ID:          4,
			Name:        "Stainless Steel Water Bottle",
			Description: "Insulated 24oz bottle, keeps drinks cold for 24 hours",
			Price:       28.95,
			Rating:      4.9,
			Reviews:     315,
			ImageRef:    pexels("4397836"),
			Category:    ProductPersonal,
			EcoScore:    9.4,
			Badges:      []string{"Plastic-Free", "Reusable"},
		},
		{
			ID:          5,
			Name:        "Organic Cotton Tote Bag",
			Description: "Heavy-duty shopping bag made from organic cotton",
			Price:       18.99,
			Rating:      4.7,
			Reviews:     156,
			ImageRef:    pexels("5217977"),
			Category:    ProductFashion,
			EcoScore:    9.1,
			Badges:      []string{"Organic", "Fair Trade"},
		},
		{
			ID:          6,
			Name:        "Beeswax Food Wraps",
			Description: "Reusable alternative to plastic wrap, set of 3 sizes",
			Price:       22.00,
			Rating:      4.5,
			Reviews:     178,
			ImageRef:    pexels("6157229"),
			Category:    ProductKitchen,
			EcoScore:    9.7,
			Badges:      []string{"Zero-Waste", "Biodegradable"},
		},
		{
			ID:          7,
			Name:        "LED Solar Garden Lights",
			Description: "Pack of 6 solar-powered pathway lights",
			Price:       34.99,
			Rating:      4.2,
			Reviews:     92,
			ImageRef:    pexels("1108499"),
			Category:    ProductHome,
			EcoScore:    8.3,
			Badges:      []string{"Energy-Efficient", "Solar-Powered"},
		},
		{
			ID:          8,
			Name:        "Recycled Paper Notebook",
			Description: "100% post-consumer recycled paper, 80 pages",
			Price:       9.95,
			Rating:      4.4,
			Reviews:     67,
			ImageRef:    pexels("4226896"),
			Category:    ProductOffice,
			EcoScore:    8.9,
			Badges:      []string{"Recycled", "Tree-Free"},
		},
	}
}
