package repositories

import "furniture-shop/models"

// Fixed catalog used to bootstrap an empty products collection. Items
// with a model URL can be placed in augmented reality by the app.
var sampleCategories = []models.Category{
	{ID: "sofas", Name: "Sofas"},
	{ID: "chairs", Name: "Chairs"},
	{ID: "tables", Name: "Tables"},
	{ID: "beds", Name: "Beds"},
	{ID: "lighting", Name: "Lighting"},
	{ID: "storage", Name: "Storage"},
}

var sampleProducts = []models.Product{
	{
		ID:          "p1",
		Name:        "Oslo Lounge Sofa",
		Description: "Three-seat sofa with oak legs and washable linen covers.",
		Price:       899.00,
		Category:    "Sofas",
		CategoryID:  "sofas",
		ImageURL:    "https://cdn.furniture-shop.dev/images/oslo-lounge-sofa.jpg",
		ModelURL:    "https://cdn.furniture-shop.dev/models/oslo-lounge-sofa.glb",
	},
	{
		ID:          "p2",
		Name:        "Fjord Armchair",
		Description: "Compact armchair with a high back and tapered birch frame.",
		Price:       349.00,
		Category:    "Chairs",
		CategoryID:  "chairs",
		ImageURL:    "https://cdn.furniture-shop.dev/images/fjord-armchair.jpg",
		ModelURL:    "https://cdn.furniture-shop.dev/models/fjord-armchair.glb",
	},
	{
		ID:          "p3",
		Name:        "Bergen Dining Chair",
		Description: "Stackable dining chair in powder-coated steel and ash veneer.",
		Price:       89.00,
		Category:    "Chairs",
		CategoryID:  "chairs",
		ImageURL:    "https://cdn.furniture-shop.dev/images/bergen-dining-chair.jpg",
	},
	{
		ID:          "p4",
		Name:        "Aspen Coffee Table",
		Description: "Round coffee table with a smoked glass top and walnut base.",
		Price:       229.00,
		Category:    "Tables",
		CategoryID:  "tables",
		ImageURL:    "https://cdn.furniture-shop.dev/images/aspen-coffee-table.jpg",
		ModelURL:    "https://cdn.furniture-shop.dev/models/aspen-coffee-table.glb",
	},
	{
		ID:          "p5",
		Name:        "Lofoten Dining Table",
		Description: "Extendable dining table seating up to eight, solid oak.",
		Price:       1199.00,
		Category:    "Tables",
		CategoryID:  "tables",
		ImageURL:    "https://cdn.furniture-shop.dev/images/lofoten-dining-table.jpg",
		ModelURL:    "https://cdn.furniture-shop.dev/models/lofoten-dining-table.glb",
	},
	{
		ID:          "p6",
		Name:        "Hamar Bed Frame",
		Description: "Queen bed frame with a padded headboard and slatted base.",
		Price:       649.00,
		Category:    "Beds",
		CategoryID:  "beds",
		ImageURL:    "https://cdn.furniture-shop.dev/images/hamar-bed-frame.jpg",
		ModelURL:    "https://cdn.furniture-shop.dev/models/hamar-bed-frame.glb",
	},
	{
		ID:          "p7",
		Name:        "Voss Floor Lamp",
		Description: "Arc floor lamp with a marble foot and brass stem.",
		Price:       159.00,
		Category:    "Lighting",
		CategoryID:  "lighting",
		ImageURL:    "https://cdn.furniture-shop.dev/images/voss-floor-lamp.jpg",
	},
	{
		ID:          "p8",
		Name:        "Narvik Pendant Light",
		Description: "Dimmable pendant light in spun aluminium, matte black.",
		Price:       119.00,
		Category:    "Lighting",
		CategoryID:  "lighting",
		ImageURL:    "https://cdn.furniture-shop.dev/images/narvik-pendant-light.jpg",
	},
	{
		ID:          "p9",
		Name:        "Tromso Bookshelf",
		Description: "Five-shelf bookcase in white-stained pine, wall anchor included.",
		Price:       279.00,
		Category:    "Storage",
		CategoryID:  "storage",
		ImageURL:    "https://cdn.furniture-shop.dev/images/tromso-bookshelf.jpg",
		ModelURL:    "https://cdn.furniture-shop.dev/models/tromso-bookshelf.glb",
	},
	{
		ID:          "p10",
		Name:        "Molde Sideboard",
		Description: "Low sideboard with push-to-open doors and cable outlets.",
		Price:       499.00,
		Category:    "Storage",
		CategoryID:  "storage",
		ImageURL:    "https://cdn.furniture-shop.dev/images/molde-sideboard.jpg",
	},
}

// SampleCategories returns the fixed category list the catalog is
// organized by.
func SampleCategories() []models.Category {
	categories := make([]models.Category, len(sampleCategories))
	copy(categories, sampleCategories)
	return categories
}
