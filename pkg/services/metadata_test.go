package services

import (
	"testing"

	"cubita-site/pkg/config"
	"cubita-site/pkg/models"
)

var fallback = MetadataFallback{
	Title:       "Cubita Producciones",
	Description: "Agencia de booking",
}

func TestMetadataFallbackLaw(t *testing.T) {
	tests := map[string]*models.SEO{
		"nil_seo":   nil,
		"empty_seo": {},
		"empty_locale_override": {
			MetaTitle:       models.LocalizedText{En: "English only"},
			MetaDescription: models.LocalizedText{En: "English only"},
		},
	}

	for name, seo := range tests {
		t.Run(name, func(t *testing.T) {
			md := BuildMetadata(seo, "es", fallback, "")
			if md.Title != fallback.Title {
				t.Errorf("Title = %q, want fallback %q", md.Title, fallback.Title)
			}
			if md.Description != fallback.Description {
				t.Errorf("Description = %q, want fallback %q", md.Description, fallback.Description)
			}
		})
	}
}

func TestMetadataOverrideWins(t *testing.T) {
	seo := &models.SEO{
		MetaTitle:       models.LocalizedText{Fr: "Titre SEO"},
		MetaDescription: models.LocalizedText{Fr: "Description SEO"},
	}
	md := BuildMetadata(seo, "fr", fallback, "")
	if md.Title != "Titre SEO" {
		t.Errorf("Title = %q, want override", md.Title)
	}
	if md.Description != "Description SEO" {
		t.Errorf("Description = %q, want override", md.Description)
	}
	if md.OpenGraph.Title != "Titre SEO" || md.Twitter.Title != "Titre SEO" {
		t.Errorf("OG/Twitter title not propagated: %q / %q", md.OpenGraph.Title, md.Twitter.Title)
	}
}

func TestMetadataAlternates(t *testing.T) {
	md := BuildMetadata(nil, "en", fallback, "/artistas")

	if len(md.Alternates.Languages) != len(models.Locales) {
		t.Fatalf("got %d alternates, want %d", len(md.Alternates.Languages), len(models.Locales))
	}
	for _, locale := range models.Locales {
		want := config.BaseURL + "/" + locale + "/artistas"
		if got := md.Alternates.Languages[locale]; got != want {
			t.Errorf("alternate[%s] = %q, want %q", locale, got, want)
		}
	}
	if md.Alternates.Canonical != config.BaseURL+"/en/artistas" {
		t.Errorf("Canonical = %q", md.Alternates.Canonical)
	}
}

func TestMetadataCanonicalOverride(t *testing.T) {
	seo := &models.SEO{CanonicalURL: "https://elsewhere.example.com/page"}
	md := BuildMetadata(seo, "es", fallback, "/contacto")
	if md.Alternates.Canonical != "https://elsewhere.example.com/page" {
		t.Errorf("Canonical = %q, want override", md.Alternates.Canonical)
	}
	// Alternates still cover all locales regardless of the override.
	if len(md.Alternates.Languages) != 4 {
		t.Errorf("got %d alternates, want 4", len(md.Alternates.Languages))
	}
}

func TestMetadataRobotsDuality(t *testing.T) {
	restricted := BuildMetadata(&models.SEO{NoIndex: true}, "es", fallback, "")
	if restricted.Robots.Index || restricted.Robots.Follow {
		t.Errorf("noIndex robots = %+v, want index=false follow=false", restricted.Robots)
	}
	if restricted.Robots.GoogleBot.MaxImagePreview != "none" || restricted.Robots.GoogleBot.MaxSnippet != 0 {
		t.Errorf("noIndex googleBot = %+v", restricted.Robots.GoogleBot)
	}

	permissive := BuildMetadata(&models.SEO{NoIndex: false}, "es", fallback, "")
	if !permissive.Robots.Index || !permissive.Robots.Follow {
		t.Errorf("permissive robots = %+v, want index=true follow=true", permissive.Robots)
	}
	if permissive.Robots.GoogleBot.MaxImagePreview != "large" || permissive.Robots.GoogleBot.MaxSnippet != -1 {
		t.Errorf("permissive googleBot = %+v", permissive.Robots.GoogleBot)
	}
}

func TestMetadataKeywords(t *testing.T) {
	if md := BuildMetadata(nil, "es", fallback, ""); md.Keywords != "" {
		t.Errorf("Keywords = %q, want empty without SEO", md.Keywords)
	}
	md := BuildMetadata(&models.SEO{Keywords: "salsa, booking"}, "es", fallback, "")
	if md.Keywords != "salsa, booking" {
		t.Errorf("Keywords = %q", md.Keywords)
	}
}

func TestMetadataShareImage(t *testing.T) {
	md := BuildMetadata(nil, "es", fallback, "")
	want := config.BaseURL + "/og-image.jpg"
	if len(md.OpenGraph.Images) != 1 || md.OpenGraph.Images[0].URL != want {
		t.Errorf("OG images = %+v, want default share image %q", md.OpenGraph.Images, want)
	}
	if len(md.Twitter.Images) != 1 || md.Twitter.Images[0] != want {
		t.Errorf("Twitter images = %+v", md.Twitter.Images)
	}

	md = BuildMetadata(&models.SEO{OgImage: "https://cdn.example.com/og.png"}, "es", fallback, "")
	if md.OpenGraph.Images[0].URL != "https://cdn.example.com/og.png" {
		t.Errorf("OG image = %q, want override", md.OpenGraph.Images[0].URL)
	}
}

func TestMetadataUnknownLocale(t *testing.T) {
	md := BuildMetadata(nil, "de", fallback, "")
	if md.OpenGraph.Locale != "es" {
		t.Errorf("Locale = %q, want es fallback", md.OpenGraph.Locale)
	}
	if md.OpenGraph.URL != config.BaseURL+"/es" {
		t.Errorf("URL = %q", md.OpenGraph.URL)
	}
}
