package transform

import (
	"content-sync/core/contentful"
	"content-sync/feature/content/models"
	"content-sync/feature/content/resolve"
	"content-sync/feature/content/variants"
)

// Tours converts experience entries, one record per entry.
func Tours(p *contentful.Payload) []models.Tour {
	assets := resolve.NewAssetIndex(p.Assets)
	out := make([]models.Tour, 0, len(p.Items))

	for i, raw := range p.Items {
		e := newEntry(raw)

		out = append(out, models.Tour{
			Slug:             deriveSlug(e.str("slug", ""), e.str("tourName", ""), e.id, models.CategoryTours, i),
			TourName:         e.str("tourName", "Untitled Tour"),
			TourDescription:  e.str("tourDescription", ""),
			Image:            assets.URL(e.field("tourImage")),
			StripePriceID:    variants.PickPriceRef(e.fields),
			Price:            e.number("price"),
			RequiresShipping: false,
		})
	}

	return out
}
