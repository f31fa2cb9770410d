package catalog

import "strings"

const (
	placeholderVehicle = "https://via.placeholder.com/600x400?text=Vehicle"
	placeholderProduct = "https://via.placeholder.com/600x400?text=Product"
)

// Default builds the registry of supported categories. Registration order is
// the inter-category order of the unfiltered listing endpoint.
func Default() *Registry {
	return NewRegistry(carsDescriptor(), jumiaDescriptor())
}

func carsDescriptor() *Descriptor {
	return &Descriptor{
		Name:     "cars",
		Table:    "coin_afrique_cars",
		IDColumn: "coin_afrique_id",
		SelectColumns: []string{
			"coin_afrique_id AS source_id",
			"brand",
			"model",
			"seller_name",
			"location",
			"Price AS price",
			"image_url",
			"year",
		},
		OrderBy: "brand ASC, model ASC",
		MapRow:  mapCarRow,
		Recommendations: &RecommendationDescriptor{
			Table:        "coin_recommendations",
			SourceColumn: "product_id",
			TargetColumn: "recommended_id",
			OrderBy:      "confidence DESC, lift DESC",
			Limit:        8,
		},
		RecommendationTitle: "Recommended For You",
	}
}

func jumiaDescriptor() *Descriptor {
	return &Descriptor{
		Name:     "jumia",
		Table:    "jumia_products",
		IDColumn: "jumia_product_id",
		SelectColumns: []string{
			"jumia_product_id AS source_id",
			"brand_name",
			"product_name",
			"Price AS price",
			"discount",
			"reviews_rating",
			"reviews_count",
			"image_url",
		},
		OrderBy: "brand_name ASC, product_name ASC",
		MapRow:  mapJumiaRow,
		Recommendations: &RecommendationDescriptor{
			Table:        "jumia_recommendations",
			SourceColumn: "product_id",
			TargetColumn: "recommended_id",
			OrderBy:      "confidence DESC, lift DESC",
			Limit:        8,
		},
		RecommendationTitle:   "Users Also Bought With",
		DedupeRecommendations: true,
	}
}

func mapCarRow(r Row) Product {
	brand := r.StringPtr("brand")
	model := r.StringPtr("model")

	name := collapseSpaces(joinParts(" ", r.String("brand"), r.String("model")))
	if name == "" {
		name = "Vehicle listing"
	}

	details := joinParts(" • ",
		labeled("Year: ", r.String("year")),
		labeled("Location: ", r.String("location")),
		labeled("Seller: ", r.String("seller_name")),
	)
	if details == "" {
		details = "Vehicle sourced from CoinAfrique listings"
	}

	return Product{
		ID:          r.String("source_id"),
		Name:        name,
		Description: details,
		Price:       r.Float("price"),
		ImageURL:    fallback(r.String("image_url"), placeholderVehicle),
		Category:    "cars",
		Brand:       brand,
		Model:       model,
		Location:    r.StringPtr("location"),
		SellerName:  r.StringPtr("seller_name"),
		Year:        r.IntPtr("year"),
	}
}

func mapJumiaRow(r Row) Product {
	name := strings.TrimSpace(r.String("product_name"))
	if name == "" {
		name = strings.TrimSpace(r.String("brand_name"))
	}
	if name == "" {
		name = "Jumia product"
	}

	details := joinParts(" • ",
		labeled("Brand: ", r.String("brand_name")),
		labeled("Discount: ", r.String("discount")),
		labeled("Rating: ", r.String("reviews_rating")),
		suffixed(r.String("reviews_count"), " reviews"),
	)
	if details == "" {
		details = "Popular item sourced from Jumia listings"
	}

	return Product{
		ID:            r.String("source_id"),
		Name:          name,
		Description:   details,
		Price:         r.Float("price"),
		ImageURL:      fallback(r.String("image_url"), placeholderProduct),
		Category:      "jumia",
		Brand:         r.StringPtr("brand_name"),
		Discount:      r.StringPtr("discount"),
		ReviewsRating: r.FloatPtr("reviews_rating"),
		ReviewsCount:  r.IntPtr("reviews_count"),
	}
}

// joinParts joins the non-empty parts with sep.
func joinParts(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

func suffixed(value, suffix string) string {
	if value == "" {
		return ""
	}
	return value + suffix
}

// collapseSpaces trims and squeezes runs of whitespace into single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
