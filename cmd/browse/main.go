// Command browse renders a product detail view from a running catalog API,
// maintaining the same local favorites and recently-viewed state as the web
// client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
	"github.com/PaulElielk/Data-mining-Project/internal/detail"
	"github.com/PaulElielk/Data-mining-Project/internal/localstore"
)

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("base", defaultBaseURL(), "catalog API base URL")
	category := flag.String("category", "jumia", "product category")
	id := flag.String("id", "", "product id (required)")
	stateDir := flag.String("state", defaultStateDir(), "directory for local browsing state")
	toggleFavorite := flag.Bool("favorite", false, "toggle the favorite state of the product")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *id == "" {
		flag.Usage()
		os.Exit(2)
	}

	store, err := localstore.NewFileStore(*stateDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", *stateDir).Msg("failed to open local state")
	}

	loader := detail.NewLoader(
		detail.NewClient(*baseURL, nil),
		catalog.Default(),
		localstore.NewRecent(store),
		localstore.NewFavorites(store),
	)

	view, err := loader.Load(context.Background(), *category, *id)
	if err != nil {
		logger.Fatal().Err(err).Str("category", *category).Str("id", *id).Msg("failed to load product")
	}

	if *toggleFavorite {
		saved, err := loader.ToggleFavorite(view.Product)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to toggle favorite")
		}
		view.Favorite = saved
	}

	printView(view)
}

func printView(view *detail.View) {
	p := view.Product
	fmt.Printf("%s\n", p.Name)
	fmt.Printf("  %s\n", p.Description)
	fmt.Printf("  FCFA %.0f", p.Price)
	if view.Favorite {
		fmt.Print("  [saved]")
	}
	fmt.Println()
	printAttr("Brand", p.Brand)
	printAttr("Model", p.Model)
	printAttr("Location", p.Location)
	printAttr("Seller", p.SellerName)
	if p.Year != nil {
		fmt.Printf("  Year: %d\n", *p.Year)
	}
	printAttr("Discount", p.Discount)
	if p.ReviewsRating != nil {
		fmt.Printf("  Rating: %g", *p.ReviewsRating)
		if p.ReviewsCount != nil {
			fmt.Printf(" (%d reviews)", *p.ReviewsCount)
		}
		fmt.Println()
	}

	fmt.Printf("\n%s\n", view.RecommendationTitle)
	if len(view.Recommendations) == 0 {
		fmt.Println("  No recommendation data available for this item yet.")
	}
	for _, r := range view.Recommendations {
		fmt.Printf("  - %s (FCFA %.0f", r.Name, r.Price)
		if r.Meta.Confidence != nil {
			fmt.Printf(", confidence %.2f", *r.Meta.Confidence)
		}
		fmt.Println(")")
	}

	if len(view.RecentlyViewed) > 0 {
		fmt.Println("\nRecently Viewed")
		for _, e := range view.RecentlyViewed {
			fmt.Printf("  - [%s] %s\n", e.Category, e.Name)
		}
	}
}

func printAttr(label string, v *string) {
	if v != nil {
		fmt.Printf("  %s: %s\n", label, *v)
	}
}

func defaultBaseURL() string {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".browse-state"
	}
	return filepath.Join(home, ".catalog-browse")
}
