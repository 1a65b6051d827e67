// Package types - Business category enumeration
package types

// Category is the seller's declared product category. It selects the
// packaging fraction used when converting shipped weight to packaging weight.
type Category string

const (
	// CategoryNone means no category was selected; the flat default
	// packaging fraction applies.
	CategoryNone Category = ""

	CategoryJewelry    Category = "jewelry-accessories"
	CategoryClothing   Category = "clothing"
	CategoryHomeLiving Category = "home-living"
	CategoryArtPrints  Category = "art-prints"
	CategoryBags       Category = "bags-purses"
	CategoryBathBeauty Category = "bath-beauty-health"
	CategoryToys       Category = "toys-games-kids"
	CategoryBooksMedia Category = "books-music-media"
	CategoryFood       Category = "food-beverages"
	CategoryStationery Category = "stationery-gifts"
)

// Categories lists every selectable category in display order.
var Categories = []Category{
	CategoryJewelry,
	CategoryClothing,
	CategoryHomeLiving,
	CategoryArtPrints,
	CategoryBags,
	CategoryBathBeauty,
	CategoryToys,
	CategoryBooksMedia,
	CategoryFood,
	CategoryStationery,
}

// Valid reports whether c is a known category or the unset sentinel.
func (c Category) Valid() bool {
	if c == CategoryNone {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}
