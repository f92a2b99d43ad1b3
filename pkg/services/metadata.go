package services

import (
	"cubita-site/pkg/config"
	"cubita-site/pkg/models"
)

// MetadataFallback supplies the title and description used when the SEO
// record is absent or its localized override is empty.
type MetadataFallback struct {
	Title       string
	Description string
}

// BuildMetadata derives the complete metadata bundle for a page from its SEO
// record, the active locale and the locale-less page path (e.g. "/artistas").
// Pure computation; an empty localized override counts as "not set" and
// falls back, per firstNonEmpty.
func BuildMetadata(seo *models.SEO, locale string, fallback MetadataFallback, path string) models.Metadata {
	locale = models.ParseLocale(locale)

	title := fallback.Title
	description := fallback.Description
	if seo != nil {
		title = firstNonEmpty(seo.MetaTitle.In(locale), fallback.Title)
		description = firstNonEmpty(seo.MetaDescription.In(locale), fallback.Description)
	}

	pageURL := config.BaseURL + "/" + locale + path

	ogImage := config.BaseURL + "/og-image.jpg"
	if seo != nil && seo.OgImage != "" {
		ogImage = seo.OgImage
	}

	canonical := pageURL
	if seo != nil && seo.CanonicalURL != "" {
		canonical = seo.CanonicalURL
	}

	// Alternates always cover all four locales, regardless of any override.
	languages := make(map[string]string, len(models.Locales))
	for _, l := range models.Locales {
		languages[l] = config.BaseURL + "/" + l + path
	}

	md := models.Metadata{
		Title:       title,
		Description: description,
		OpenGraph: models.OpenGraph{
			Title:       title,
			Description: description,
			URL:         pageURL,
			Type:        "website",
			SiteName:    config.SiteName,
			Locale:      locale,
			Images: []models.OGImage{
				{URL: ogImage, Width: 1200, Height: 630, Alt: title},
			},
		},
		Twitter: models.TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{ogImage},
		},
		Alternates: models.Alternates{
			Canonical: canonical,
			Languages: languages,
		},
	}

	if seo != nil && seo.Keywords != "" {
		md.Keywords = seo.Keywords
	}

	if seo != nil && seo.NoIndex {
		md.Robots = models.Robots{
			Index:  false,
			Follow: false,
			GoogleBot: models.GoogleBot{
				Index:           false,
				Follow:          false,
				MaxImagePreview: "none",
				MaxSnippet:      0,
			},
		}
	} else {
		md.Robots = models.Robots{
			Index:  true,
			Follow: true,
			GoogleBot: models.GoogleBot{
				Index:           true,
				Follow:          true,
				MaxImagePreview: "large",
				MaxSnippet:      -1,
			},
		}
	}

	return md
}
