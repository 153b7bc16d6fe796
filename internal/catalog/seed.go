package catalog

// Default returns the built-in demo catalog.
func Default() *Catalog {
	return New([]Product{
		{
			ID:          "p1",
			Name:        "Notebook Pro 14",
			Description: "Intel i7, 16GB RAM, 512GB SSD, 14\" display",
			Price:       6499.90,
			Category:    CategoryLaptops,
			Rating:      4.7,
			Stock:       12,
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=1200&auto=format&fit=crop",
			Specs:       []string{"Intel i7 12th Gen", "16GB DDR5", "512GB NVMe", "14\" 2K IPS display"},
		},
		{
			ID:          "p2",
			Name:        "Smartphone X Max",
			Description: "128GB, 48MP camera, 5000mAh battery",
			Price:       2899.00,
			Category:    CategoryPhones,
			Rating:      4.5,
			Stock:       24,
			ImageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?q=80&w=1200&auto=format&fit=crop",
			Specs:       []string{"128GB UFS", "48MP + 12MP", "5000mAh battery", "6.5\" 120Hz display"},
		},
		{
			ID:          "p3",
			Name:        "Monitor 27\" QHD",
			Description: "IPS panel, 165Hz, HDR10",
			Price:       1799.90,
			Category:    CategoryMonitors,
			Rating:      4.6,
			Stock:       9,
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=1200&auto=format&fit=crop",
			Specs:       []string{"QHD 2560x1440", "165Hz", "IPS", "HDR10"},
		},
		{
			ID:          "p4",
			Name:        "SSD NVMe 1TB",
			Description: "7000MB/s read, 6500MB/s write",
			Price:       499.90,
			Category:    CategoryComponents,
			Rating:      4.8,
			Stock:       30,
			ImageURL:    "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?q=80&w=1200&auto=format&fit=crop",
			Specs:       []string{"PCIe 4.0", "1TB", "7000/6500MB/s", "5 year warranty"},
		},
		{
			ID:          "p5",
			Name:        "Gaming Headset 7.1",
			Description: "Surround sound, noise-cancelling microphone",
			Price:       349.00,
			Category:    CategoryComponents,
			Rating:      4.3,
			Stock:       50,
			ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?q=80&w=1200&auto=format&fit=crop",
			Specs:       []string{"Virtual 7.1", "50mm drivers", "USB", "RGB"},
		},
		{
			ID:          "p6",
			Name:        "Notebook Slim 15",
			Description: "Ryzen 7, 8GB RAM, 256GB SSD, 15.6\" display",
			Price:       3599.00,
			Category:    CategoryLaptops,
			Rating:      4.2,
			Stock:       15,
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=1200&auto=format&fit=crop",
			Specs:       []string{"Ryzen 7 5700U", "8GB DDR4", "256GB NVMe", "15.6\" FHD display"},
		},
	})
}
