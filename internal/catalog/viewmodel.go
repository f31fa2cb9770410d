package catalog

// Product is the canonical view-model returned by the API for every category.
// JSON tags follow the camelCase convention used elsewhere in the project.
//
// The optional attribute set is the union of all category schemas: each
// category fills in only the fields that apply and the rest serialize as
// null, so clients never have to branch on response shape.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`

	Brand         *string  `json:"brand"`
	Model         *string  `json:"model"`
	Color         *string  `json:"color"`
	Storage       *string  `json:"storage"`
	ScreenSize    *string  `json:"screenSize"`
	Battery       *string  `json:"battery"`
	Engine        *string  `json:"engine"`
	Range         *string  `json:"range"`
	Acceleration  *string  `json:"acceleration"`
	Location      *string  `json:"location"`
	SellerName    *string  `json:"sellerName"`
	Year          *int     `json:"year"`
	Discount      *string  `json:"discount"`
	ReviewsRating *float64 `json:"reviewsRating"`
	ReviewsCount  *int     `json:"reviewsCount"`
}

// RecommendationMeta carries the association-rule scores explaining why a
// product was suggested. Fields are null when the edge row lacks the value.
type RecommendationMeta struct {
	Support    *float64 `json:"support"`
	Confidence *float64 `json:"confidence"`
	Lift       *float64 `json:"lift"`
}
