package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category names double as snapshot file names.
const (
	CategoryProducts  = "products"
	CategoryTours     = "tours"
	CategoryDonations = "donations"
	CategoryPosts     = "posts"
)

// Categories lists every synced category in snapshot order.
var Categories = []string{CategoryProducts, CategoryTours, CategoryDonations, CategoryPosts}

// Variant is one purchasable configuration of a catalog item.
type Variant struct {
	Label         string  `json:"label"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ImageIndex    int     `json:"imageIndex"`
	StripePriceID string  `json:"stripePriceId"`
}

// VariantMap keeps variants in the order they were declared upstream.
type VariantMap = orderedmap.OrderedMap[string, Variant]

// NewVariantMap returns an empty VariantMap.
func NewVariantMap() *VariantMap {
	return orderedmap.New[string, Variant]()
}

// Product is a catalog item. It always requires shipping.
type Product struct {
	Slug               string      `json:"slug"`
	ProductName        string      `json:"productName"`
	ProductDescription string      `json:"productDescription"`
	Category           string      `json:"category"`
	SKU                string      `json:"sku"`
	Tags               []string    `json:"tags"`
	Images             []string    `json:"images"`
	Variants           *VariantMap `json:"variants"`
	DefaultKey         string      `json:"defaultKey"`
	CareInstructions   string      `json:"careInstructions"`
	Disclaimer         string      `json:"disclaimer"`
	RequiresShipping   bool        `json:"requiresShipping"`
}

// Tour is a bookable experience.
type Tour struct {
	Slug             string  `json:"slug"`
	TourName         string  `json:"tourName"`
	TourDescription  string  `json:"tourDescription"`
	Image            string  `json:"image"`
	StripePriceID    string  `json:"stripePriceId"`
	Price            float64 `json:"price"`
	RequiresShipping bool    `json:"requiresShipping"`
}

// Donation is a contribution tier.
type Donation struct {
	Slug             string  `json:"slug"`
	TierName         string  `json:"tierName"`
	TierDescription  string  `json:"tierDescription"`
	StripePriceID    string  `json:"stripePriceId"`
	Price            float64 `json:"price"`
	RequiresShipping bool    `json:"requiresShipping"`
}

// Post is an article. Body is kept as raw JSON: plain text or a rich text document.
type Post struct {
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	PublishedDate string          `json:"publishedDate"`
	Date          string          `json:"date"`
	Excerpt       string          `json:"excerpt"`
	Body          json.RawMessage `json:"body"`
	HeroImage     string          `json:"heroImage"`
	Tags          []string        `json:"tags"`
}

// Snapshot is the full output of one sync run.
type Snapshot struct {
	Products  []Product  `json:"products"`
	Tours     []Tour     `json:"tours"`
	Donations []Donation `json:"donations"`
	Posts     []Post     `json:"posts"`
}

// Counts returns the number of records per category.
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		CategoryProducts:  len(s.Products),
		CategoryTours:     len(s.Tours),
		CategoryDonations: len(s.Donations),
		CategoryPosts:     len(s.Posts),
	}
}

// Documents returns each category's records keyed by category name.
func (s *Snapshot) Documents() map[string]any {
	return map[string]any{
		CategoryProducts:  s.Products,
		CategoryTours:     s.Tours,
		CategoryDonations: s.Donations,
		CategoryPosts:     s.Posts,
	}
}
