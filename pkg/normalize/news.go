package normalize

import (
	"worldinfo/pkg/domain"
)

// MaxNewsItems bounds every news result; the upstream ordering is preserved.
const MaxNewsItems = 5

// Article mirrors one entry of NewsAPI's articles array.
type Article struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
}

// News maps the first MaxNewsItems upstream articles, in upstream order.
// Missing optional fields stay null; nothing is fabricated.
func News(articles []Article) []domain.NewsItem {
	if len(articles) > MaxNewsItems {
		articles = articles[:MaxNewsItems]
	}
	items := make([]domain.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, domain.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}
	return items
}
