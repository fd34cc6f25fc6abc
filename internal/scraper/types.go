// Package scraper walks a retailer's paginated category listings, opens each
// product in the detail view and turns the page into a normalized product
// record with category-specific attributes.
package scraper

import (
	"edivaldoleitao/tracksave/internal/category"
)

// ScrapedProduct is one fully extracted product, ready for the price store
// and the ingestion API. Value is a normalized decimal string ("1234.56");
// CollectionDate is the scrape date in YYYY-MM-DD.
type ScrapedProduct struct {
	Name           string            `json:"name"`
	Category       category.Category `json:"category"`
	Description    string            `json:"description"`
	ImageURL       string            `json:"image_url"`
	Brand          string            `json:"brand"`
	Store          string            `json:"store"`
	URL            string            `json:"url"`
	Available      bool              `json:"available"`
	Rating         float64           `json:"rating"`
	Value          string            `json:"value"`
	CollectionDate string            `json:"collection_date"`
	Specs          map[string]string `json:"specs"`
}

// ItemError records one item that failed mid-walk. Name and Brand come from
// the listing card, so a failed detail view still identifies the product.
type ItemError struct {
	Index int
	Name  string
	Brand string
	Err   error
}

// BatchResult is the outcome of one category walk. A non-empty Failed list
// does not make the walk itself a failure.
type BatchResult struct {
	Succeeded []ScrapedProduct
	Failed    []ItemError
}

// Selectors locates the parts of the retailer's markup the walker touches.
// Listing selectors address repeated elements by position; detail selectors
// address the single open product page.
type Selectors struct {
	// listing page; ListingReady is the container that renders even when the
	// listing has zero results, so an empty page is not a load failure
	ListingReady string
	Card         string
	CardName     string
	CardLink     string
	CardImage    string

	// detail page
	DetailName   string
	DetailPrice  string
	DetailDesc   string
	DetailTech   string
	DetailRating string
	OutOfStock   string

	// pagination
	Next         string
	NextDisabled string
}
