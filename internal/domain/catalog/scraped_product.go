package catalog

// ScrapedProduct is one entry of the external search index: a product
// scraped from a retailer or archive site. It is read-only input to the
// matcher and never persisted here.
type ScrapedProduct struct {
	Name        string   `json:"name"`
	IntroYear   *int     `json:"intro_year,omitempty"`
	RetiredYear *int     `json:"retired_year,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	Description string   `json:"description,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`
	Collection  string   `json:"collection,omitempty"`
	Images      []string `json:"images,omitempty"`
	SRP         string   `json:"srp,omitempty"`
	URL         string   `json:"url,omitempty"`
}
