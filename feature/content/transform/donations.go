package transform

import (
	"content-sync/core/contentful"
	"content-sync/feature/content/models"
	"content-sync/feature/content/variants"
)

// Donations converts contribution tier entries, one record per entry.
func Donations(p *contentful.Payload) []models.Donation {
	out := make([]models.Donation, 0, len(p.Items))

	for i, raw := range p.Items {
		e := newEntry(raw)

		out = append(out, models.Donation{
			Slug:             deriveSlug(e.str("slug", ""), e.str("tierName", ""), e.id, models.CategoryDonations, i),
			TierName:         e.str("tierName", "Untitled Tier"),
			TierDescription:  e.str("tierDescription", ""),
			StripePriceID:    variants.PickPriceRef(e.fields),
			Price:            e.number("price"),
			RequiresShipping: false,
		})
	}

	return out
}
