package transform

import (
	"content-sync/core/contentful"
	"content-sync/feature/content/models"
	"content-sync/feature/content/resolve"
)

// Posts converts article entries, one record per entry.
func Posts(p *contentful.Payload) []models.Post {
	assets := resolve.NewAssetIndex(p.Assets)
	out := make([]models.Post, 0, len(p.Items))

	for i, raw := range p.Items {
		e := newEntry(raw)
		published := e.str("publishedDate", "")

		out = append(out, models.Post{
			Slug:          deriveSlug(e.str("slug", ""), e.str("title", ""), e.id, models.CategoryPosts, i),
			Title:         e.str("title", "Untitled"),
			PublishedDate: published,
			Date:          published,
			Excerpt:       e.str("excerpt", ""),
			Body:          e.raw("body"),
			HeroImage:     assets.URL(e.field("heroImage")),
			Tags:          e.tags("tags"),
		})
	}

	return out
}
