package services

import (
	"reflect"
	"testing"

	"cubita-site/pkg/config"
	"cubita-site/pkg/models"
)

func TestDefaultSubstitution(t *testing.T) {
	// A nil raw record (total fetch failure) must yield the default record
	// unchanged, for every content type.
	if got := normalizeHomePage(nil); !reflect.DeepEqual(got, models.DefaultHomePage()) {
		t.Errorf("normalizeHomePage(nil) = %+v, want defaults", got)
	}
	if got := normalizeAboutPage(nil); !reflect.DeepEqual(got, models.DefaultAboutPage()) {
		t.Errorf("normalizeAboutPage(nil) = %+v, want defaults", got)
	}
	if got := normalizeContactPage(nil); !reflect.DeepEqual(got, models.DefaultContactPage()) {
		t.Errorf("normalizeContactPage(nil) = %+v, want defaults", got)
	}
	if got := normalizeArtistsPage(nil); !reflect.DeepEqual(got, models.DefaultArtistsPage()) {
		t.Errorf("normalizeArtistsPage(nil) = %+v, want defaults", got)
	}
	if got := normalizeSiteSettings(nil); !reflect.DeepEqual(got, models.DefaultSiteSettings()) {
		t.Errorf("normalizeSiteSettings(nil) = %+v, want defaults", got)
	}
}

func TestLocaleCompleteness(t *testing.T) {
	// Feed partial raw input: every locale slot must still come out filled,
	// either from upstream or from the default.
	tests := map[string]map[string]any{
		"empty":        {},
		"only_spanish": {"heroTitleEs": "Hola"},
		"mixed": {
			"heroTitleEn":    "Hello",
			"heroSubtitleFr": "Sous-titre",
			"aboutTextIt":    "Testo",
		},
		"null_values": {
			"heroTitleEs": nil,
			"heroTitleEn": nil,
		},
		"wrong_types": {
			"heroTitleEs": 42,
			"aboutTextEn": true,
		},
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			page := normalizeHomePage(raw)
			for _, lt := range []models.LocalizedText{
				page.HeroTitle, page.HeroSubtitle, page.AboutTitle, page.AboutText, page.CTAText,
			} {
				for _, locale := range models.Locales {
					if lt.In(locale) == "" {
						t.Errorf("locale %q empty after normalization: %+v", locale, lt)
					}
				}
			}
		})
	}
}

func TestLocalizedTextUpstreamWins(t *testing.T) {
	raw := map[string]any{
		"heroTitleEs": "Título",
		"heroTitleFr": "Titre",
	}
	page := normalizeHomePage(raw)
	defaults := models.DefaultHomePage()

	if page.HeroTitle.Es != "Título" {
		t.Errorf("Es = %q, want upstream value", page.HeroTitle.Es)
	}
	if page.HeroTitle.Fr != "Titre" {
		t.Errorf("Fr = %q, want upstream value", page.HeroTitle.Fr)
	}
	if page.HeroTitle.En != defaults.HeroTitle.En {
		t.Errorf("En = %q, want default %q", page.HeroTitle.En, defaults.HeroTitle.En)
	}
	if page.HeroTitle.It != defaults.HeroTitle.It {
		t.Errorf("It = %q, want default %q", page.HeroTitle.It, defaults.HeroTitle.It)
	}
}

func TestStatsFallback(t *testing.T) {
	page := normalizeHomePage(map[string]any{
		"statsYears":   float64(12),
		"statsArtists": float64(0), // zero counts as unset
	})
	if page.Stats.Years != 12 {
		t.Errorf("Years = %d, want 12", page.Stats.Years)
	}
	if page.Stats.Artists != 50 {
		t.Errorf("Artists = %d, want default 50", page.Stats.Artists)
	}
}

func TestFormatAvailability(t *testing.T) {
	tests := map[string]struct {
		start, end string
		want       string
	}{
		"both_dates": {
			start: "2025-12-25",
			end:   "2025-12-30",
			want:  "25 de diciembre - 30 de diciembre 2025",
		},
		"across_months": {
			start: "2026-06-01",
			end:   "2026-07-15",
			want:  "1 de junio - 15 de julio 2026",
		},
		"missing_start": {start: "", end: "2025-12-30", want: availabilityPlaceholder},
		"missing_end":   {start: "2025-12-25", end: "", want: availabilityPlaceholder},
		"garbage":       {start: "not-a-date", end: "2025-12-30", want: availabilityPlaceholder},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := formatAvailability(tc.start, tc.end); got != tc.want {
				t.Errorf("formatAvailability(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestNormalizeArtist(t *testing.T) {
	prevURL := config.StrapiURL
	config.StrapiURL = "https://cms.example.com"
	defer func() { config.StrapiURL = prevURL }()

	artist := normalizeArtist(map[string]any{
		"documentId":        "abc123",
		"name":              "Los Van Van",
		"slug":              "los-van-van",
		"genre":             "salsa",
		"bioEs":             "Biografía",
		"availabilityStart": "2025-05-01",
		"availabilityEnd":   "2025-08-31",
		"image":             map[string]any{"url": "/uploads/band.jpg"},
		"instagram":         "https://instagram.com/losvanvan",
		"travelParty":       float64(14),
		"seo": map[string]any{
			"metaTitleEs": "Los Van Van | Booking",
			"noIndex":     true,
		},
	})

	if artist.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", artist.ID)
	}
	if artist.Image != "https://cms.example.com/uploads/band.jpg" {
		t.Errorf("Image = %q, want CMS-prefixed URL", artist.Image)
	}
	if artist.Availability != "1 de mayo - 31 de agosto 2025" {
		t.Errorf("Availability = %q", artist.Availability)
	}
	if artist.TravelParty != 14 {
		t.Errorf("TravelParty = %d, want 14", artist.TravelParty)
	}
	if artist.SEO == nil || !artist.SEO.NoIndex {
		t.Errorf("SEO = %+v, want noIndex record", artist.SEO)
	}
	if artist.SEO.MetaTitle.Es != "Los Van Van | Booking" {
		t.Errorf("MetaTitle.Es = %q", artist.SEO.MetaTitle.Es)
	}
}

func TestNormalizeArtistDefaults(t *testing.T) {
	artist := normalizeArtist(map[string]any{"id": float64(7)})

	if artist.ID != "7" {
		t.Errorf("ID = %q, want numeric fallback", artist.ID)
	}
	if artist.Genre != models.GenreSalsa {
		t.Errorf("Genre = %q, want salsa fallback", artist.Genre)
	}
	if artist.Availability != availabilityPlaceholder {
		t.Errorf("Availability = %q, want placeholder", artist.Availability)
	}
	if artist.Image != "" {
		t.Errorf("Image = %q, want empty", artist.Image)
	}
	if artist.SEO != nil {
		t.Errorf("SEO = %+v, want nil", artist.SEO)
	}
}

func TestImageURLAbsolutePassthrough(t *testing.T) {
	got := imageURL(map[string]any{"url": "https://cdn.example.com/pic.jpg"})
	if got != "https://cdn.example.com/pic.jpg" {
		t.Errorf("imageURL = %q, want absolute URL untouched", got)
	}
}

func TestParseSEOAbsent(t *testing.T) {
	if seo := parseSEO(nil); seo != nil {
		t.Errorf("parseSEO(nil) = %+v, want nil", seo)
	}
	if seo := parseSEO("bogus"); seo != nil {
		t.Errorf("parseSEO(non-map) = %+v, want nil", seo)
	}
}
