package models

// Supported display locales. Spanish is the default and the fallback for
// unknown values.
const (
	LocaleES = "es"
	LocaleEN = "en"
	LocaleFR = "fr"
	LocaleIT = "it"
)

// Locales lists every supported locale in display order.
var Locales = []string{LocaleES, LocaleEN, LocaleFR, LocaleIT}

// ParseLocale maps an arbitrary string onto a supported locale code.
// Anything unknown resolves to Spanish.
func ParseLocale(s string) string {
	switch s {
	case LocaleES, LocaleEN, LocaleFR, LocaleIT:
		return s
	}
	return LocaleES
}

// LocalizedText carries one string per supported locale. Every field is
// always present after normalization, possibly empty.
type LocalizedText struct {
	Es string `json:"es"`
	En string `json:"en"`
	Fr string `json:"fr"`
	It string `json:"it"`
}

// In returns the text for the given locale, falling back to Spanish for
// unknown locale codes.
func (t LocalizedText) In(locale string) string {
	switch locale {
	case LocaleEN:
		return t.En
	case LocaleFR:
		return t.Fr
	case LocaleIT:
		return t.It
	}
	return t.Es
}

// SEO is the per-page search/share metadata record. A nil *SEO means the
// upstream entry carried no SEO component at all.
type SEO struct {
	MetaTitle       LocalizedText `json:"metaTitle"`
	MetaDescription LocalizedText `json:"metaDescription"`
	Keywords        string        `json:"keywords,omitempty"`
	OgImage         string        `json:"ogImage,omitempty"`
	CanonicalURL    string        `json:"canonicalUrl,omitempty"`
	NoIndex         bool          `json:"noIndex"`
}

// Artist genres form a closed set.
const (
	GenreSalsa     = "salsa"
	GenreReggaeton = "reggaeton"
)

// Artist is a normalized catalog entry. Slug is the public lookup key.
type Artist struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Genre        string        `json:"genre"`
	Bio          LocalizedText `json:"bio"`
	Availability string        `json:"availability"`
	Image        string        `json:"image,omitempty"`
	Instagram    string        `json:"instagram,omitempty"`
	YouTube      string        `json:"youtube,omitempty"`
	TravelParty  int           `json:"travelParty"`
	SEO          *SEO          `json:"seo,omitempty"`
}

// Stats holds the numeric counters shown on the home and about pages.
type Stats struct {
	Years     int `json:"years"`
	Artists   int `json:"artists"`
	Festivals int `json:"festivals"`
	Countries int `json:"countries"`
}

type HomePage struct {
	HeroTitle    LocalizedText `json:"heroTitle"`
	HeroSubtitle LocalizedText `json:"heroSubtitle"`
	Stats        Stats         `json:"stats"`
	AboutTitle   LocalizedText `json:"aboutTitle"`
	AboutText    LocalizedText `json:"aboutText"`
	CTAText      LocalizedText `json:"ctaText"`
	SEO          *SEO          `json:"seo,omitempty"`
}

// Service is one entry of the about page service list.
type Service struct {
	Title LocalizedText `json:"title"`
	Text  LocalizedText `json:"text"`
}

type AboutPage struct {
	Title        LocalizedText `json:"title"`
	Subtitle     LocalizedText `json:"subtitle"`
	MissionTitle LocalizedText `json:"missionTitle"`
	MissionText  LocalizedText `json:"missionText"`
	Stats        Stats         `json:"stats"`
	Services     [3]Service    `json:"services"`
	SEO          *SEO          `json:"seo,omitempty"`
}

// FormLabels holds the localized labels of the booking inquiry form.
type FormLabels struct {
	Name    LocalizedText `json:"name"`
	Email   LocalizedText `json:"email"`
	Country LocalizedText `json:"country"`
	Date    LocalizedText `json:"date"`
	Artist  LocalizedText `json:"artist"`
	Message LocalizedText `json:"message"`
	Submit  LocalizedText `json:"submit"`
}

type ContactPage struct {
	Title             LocalizedText `json:"title"`
	Subtitle          LocalizedText `json:"subtitle"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Location          string        `json:"location"`
	ResponseTimeTitle LocalizedText `json:"responseTimeTitle"`
	ResponseTimeText  LocalizedText `json:"responseTimeText"`
	FormLabels        FormLabels    `json:"formLabels"`
	SuccessMessage    LocalizedText `json:"successMessage"`
	ErrorMessage      LocalizedText `json:"errorMessage"`
	SEO               *SEO          `json:"seo,omitempty"`
}

type ArtistsPage struct {
	Title             LocalizedText `json:"title"`
	Subtitle          LocalizedText `json:"subtitle"`
	ViewDetailsButton LocalizedText `json:"viewDetailsButton"`
	CTATitle          LocalizedText `json:"ctaTitle"`
	CTASubtitle       LocalizedText `json:"ctaSubtitle"`
	SalsaLabel        LocalizedText `json:"salsaLabel"`
	ReggaetonLabel    LocalizedText `json:"reggaetonLabel"`
	SEO               *SEO          `json:"seo,omitempty"`
}

// NavLabels holds the localized navigation entries.
type NavLabels struct {
	Home    LocalizedText `json:"home"`
	Artists LocalizedText `json:"artists"`
	About   LocalizedText `json:"about"`
	Contact LocalizedText `json:"contact"`
}

// SiteSettings is the global singleton content record.
type SiteSettings struct {
	CompanyName       string        `json:"companyName"`
	Logo              string        `json:"logo,omitempty"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Location          string        `json:"location"`
	Instagram         string        `json:"instagram,omitempty"`
	Facebook          string        `json:"facebook,omitempty"`
	YouTube           string        `json:"youtube,omitempty"`
	Nav               NavLabels     `json:"nav"`
	FooterDescription LocalizedText `json:"footerDescription"`
	FooterCopyright   LocalizedText `json:"footerCopyright"`
}
