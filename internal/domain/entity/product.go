package entity

import (
	"slices"
	"time"
)

// Product is a marketplace listing. It has no coordinate of its own.
type Product struct {
	ID          string    // Identifier assigned by the remote store on creation.
	OwnerID     string    // ID of the owning User. Not checked for referential integrity.
	Title       string    // Listing title.
	Description string    // Free-form description.
	Image       string    // Image URL.
	Status      string    // Listing status, e.g. "available".
	Price       int       // Asking price.
	BaseBid     int       // Starting bid for auctions.
	Category    string    // Primary category tag.
	Types       []string  // Listing type tags, e.g. "Buy", "Rent", "Bidding".
	CreatedAt   time.Time // Creation timestamp.
}

// Tags returns every tag attached to the product: the category followed by its types.
func (p *Product) Tags() []string {
	tags := make([]string, 0, len(p.Types)+1)
	if p.Category != "" {
		tags = append(tags, p.Category)
	}

	return append(tags, p.Types...)
}

// HasType reports whether the product is tagged with the given listing type.
func (p *Product) HasType(productType string) bool {
	return slices.Contains(p.Types, productType)
}

// ProductFilter narrows a product listing by tags. Empty fields match everything.
type ProductFilter struct {
	Category string
	Type     string
}

// Matches reports whether the product satisfies every non-empty field of the filter.
func (f ProductFilter) Matches(p *Product) bool {
	if p == nil {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Type != "" && !p.HasType(f.Type) {
		return false
	}

	return true
}
