package transform

import (
	"content-sync/core/contentful"
	"content-sync/core/utils"
	"content-sync/feature/content/models"
	"content-sync/feature/content/resolve"
	"content-sync/feature/content/variants"
)

// Products converts catalog item entries. Every entry yields exactly one record,
// in response order.
func Products(p *contentful.Payload) []models.Product {
	assets := resolve.NewAssetIndex(p.Assets)
	out := make([]models.Product, 0, len(p.Items))

	for i, raw := range p.Items {
		e := newEntry(raw)

		imageRefs := e.first("productImages", "images")
		source := e.first("variantUx", "variants", "variantJson", "variantJSON")
		explicitDefault := utils.ToString(e.first("defaultVariant", "defaultKey"))
		normalized := variants.Normalize(source, explicitDefault)

		out = append(out, models.Product{
			Slug:               deriveSlug(e.str("slug", ""), e.str("productName", ""), e.id, models.CategoryProducts, i),
			ProductName:        e.str("productName", "Untitled"),
			ProductDescription: e.str("productDescription", ""),
			Category:           e.str("category", ""),
			SKU:                e.str("sku", ""),
			Tags:               e.tags("tags"),
			Images:             assets.URLs(imageRefs),
			Variants:           normalized.Variants,
			DefaultKey:         normalized.DefaultKey,
			CareInstructions:   e.str("careInstructions", ""),
			Disclaimer:         e.str("disclaimer", ""),
			RequiresShipping:   true,
		})
	}

	return out
}
