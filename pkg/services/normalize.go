package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cubita-site/pkg/config"
	"cubita-site/pkg/models"
)

// The CMS stores one flat field per locale (titleEs, titleEn, ...). Each
// logical field carries an explicit localeKeys table so a typo is caught
// where the table is declared, not silently at lookup time.
type localeKeys struct {
	Es, En, Fr, It string
}

// firstNonEmpty implements the "empty string means unset" policy shared by
// normalization and metadata generation.
func firstNonEmpty(candidate, fallback string) string {
	if candidate != "" {
		return candidate
	}
	return fallback
}

func strField(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	return v
}

// intField falls back on missing, non-numeric and zero values, matching the
// upstream contract where zero counters mean "not set".
func intField(raw map[string]any, key string, def int) int {
	if v, ok := raw[key].(float64); ok && v != 0 {
		return int(v)
	}
	return def
}

func localizedText(raw map[string]any, k localeKeys, def models.LocalizedText) models.LocalizedText {
	return models.LocalizedText{
		Es: firstNonEmpty(strField(raw, k.Es), def.Es),
		En: firstNonEmpty(strField(raw, k.En), def.En),
		Fr: firstNonEmpty(strField(raw, k.Fr), def.Fr),
		It: firstNonEmpty(strField(raw, k.It), def.It),
	}
}

// imageURL resolves an upstream media reference to an absolute URL. Relative
// paths are prefixed with the CMS base URL; absent media yields "".
func imageURL(raw any) string {
	m, ok := raw.(map[string]any)
	if !ok {
		return ""
	}
	u, _ := m["url"].(string)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http") {
		return u
	}
	return config.StrapiURL + u
}

// availabilityPlaceholder is deliberately locale-invariant.
const availabilityPlaceholder = "Por confirmar / TBC / À confirmer"

var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// formatAvailability renders a start/end date pair as a display string in
// the default locale, e.g. "25 de diciembre - 30 de diciembre 2025".
func formatAvailability(start, end string) string {
	if start == "" || end == "" {
		return availabilityPlaceholder
	}
	s, err := parseDate(start)
	if err != nil {
		return availabilityPlaceholder
	}
	e, err := parseDate(end)
	if err != nil {
		return availabilityPlaceholder
	}
	return fmt.Sprintf("%d de %s - %d de %s %d",
		s.Day(), spanishMonths[s.Month()-1],
		e.Day(), spanishMonths[e.Month()-1],
		e.Year())
}

// ---- SEO ----

var seoKeys = struct {
	metaTitle, metaDescription localeKeys
}{
	metaTitle:       localeKeys{"metaTitleEs", "metaTitleEn", "metaTitleFr", "metaTitleIt"},
	metaDescription: localeKeys{"metaDescriptionEs", "metaDescriptionEn", "metaDescriptionFr", "metaDescriptionIt"},
}

// parseSEO builds the SEO record of a content entry. A missing SEO component
// yields nil, everything else normalizes to a complete record.
func parseSEO(raw any) *models.SEO {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	noIndex, _ := m["noIndex"].(bool)
	return &models.SEO{
		MetaTitle:       localizedText(m, seoKeys.metaTitle, models.LocalizedText{}),
		MetaDescription: localizedText(m, seoKeys.metaDescription, models.LocalizedText{}),
		Keywords:        strField(m, "keywords"),
		OgImage:         imageURL(m["ogImage"]),
		CanonicalURL:    strField(m, "canonicalUrl"),
		NoIndex:         noIndex,
	}
}

// ---- Artist ----

var artistKeys = struct {
	bio localeKeys
}{
	bio: localeKeys{"bioEs", "bioEn", "bioFr", "bioIt"},
}

func normalizeArtist(item map[string]any) models.Artist {
	id := strField(item, "documentId")
	if id == "" {
		if v, ok := item["id"].(float64); ok {
			id = strconv.Itoa(int(v))
		}
	}
	return models.Artist{
		ID:           id,
		Name:         strField(item, "name"),
		Slug:         strField(item, "slug"),
		Genre:        firstNonEmpty(strField(item, "genre"), models.GenreSalsa),
		Bio:          localizedText(item, artistKeys.bio, models.LocalizedText{}),
		Availability: formatAvailability(strField(item, "availabilityStart"), strField(item, "availabilityEnd")),
		Image:        imageURL(item["image"]),
		Instagram:    strField(item, "instagram"),
		YouTube:      strField(item, "youtube"),
		TravelParty:  intField(item, "travelParty", 0),
		SEO:          parseSEO(item["seo"]),
	}
}

// ---- Home page ----

var homePageKeys = struct {
	heroTitle, heroSubtitle, aboutTitle, aboutText, ctaText localeKeys
}{
	heroTitle:    localeKeys{"heroTitleEs", "heroTitleEn", "heroTitleFr", "heroTitleIt"},
	heroSubtitle: localeKeys{"heroSubtitleEs", "heroSubtitleEn", "heroSubtitleFr", "heroSubtitleIt"},
	aboutTitle:   localeKeys{"aboutTitleEs", "aboutTitleEn", "aboutTitleFr", "aboutTitleIt"},
	aboutText:    localeKeys{"aboutTextEs", "aboutTextEn", "aboutTextFr", "aboutTextIt"},
	ctaText:      localeKeys{"ctaTextEs", "ctaTextEn", "ctaTextFr", "ctaTextIt"},
}

func normalizeHomePage(raw map[string]any) models.HomePage {
	defaults := models.DefaultHomePage()
	if raw == nil {
		return defaults
	}
	return models.HomePage{
		HeroTitle:    localizedText(raw, homePageKeys.heroTitle, defaults.HeroTitle),
		HeroSubtitle: localizedText(raw, homePageKeys.heroSubtitle, defaults.HeroSubtitle),
		Stats: models.Stats{
			Years:     intField(raw, "statsYears", defaults.Stats.Years),
			Artists:   intField(raw, "statsArtists", defaults.Stats.Artists),
			Festivals: intField(raw, "statsFestivals", defaults.Stats.Festivals),
			Countries: intField(raw, "statsCountries", defaults.Stats.Countries),
		},
		AboutTitle: localizedText(raw, homePageKeys.aboutTitle, defaults.AboutTitle),
		AboutText:  localizedText(raw, homePageKeys.aboutText, defaults.AboutText),
		CTAText:    localizedText(raw, homePageKeys.ctaText, defaults.CTAText),
		SEO:        parseSEO(raw["seo"]),
	}
}

// ---- About page ----

var aboutPageKeys = struct {
	title, subtitle, missionTitle, missionText localeKeys
	services                                   [3]struct{ title, text localeKeys }
}{
	title:        localeKeys{"titleEs", "titleEn", "titleFr", "titleIt"},
	subtitle:     localeKeys{"subtitleEs", "subtitleEn", "subtitleFr", "subtitleIt"},
	missionTitle: localeKeys{"missionTitleEs", "missionTitleEn", "missionTitleFr", "missionTitleIt"},
	missionText:  localeKeys{"missionTextEs", "missionTextEn", "missionTextFr", "missionTextIt"},
	services: [3]struct{ title, text localeKeys }{
		{
			title: localeKeys{"service1TitleEs", "service1TitleEn", "service1TitleFr", "service1TitleIt"},
			text:  localeKeys{"service1TextEs", "service1TextEn", "service1TextFr", "service1TextIt"},
		},
		{
			title: localeKeys{"service2TitleEs", "service2TitleEn", "service2TitleFr", "service2TitleIt"},
			text:  localeKeys{"service2TextEs", "service2TextEn", "service2TextFr", "service2TextIt"},
		},
		{
			title: localeKeys{"service3TitleEs", "service3TitleEn", "service3TitleFr", "service3TitleIt"},
			text:  localeKeys{"service3TextEs", "service3TextEn", "service3TextFr", "service3TextIt"},
		},
	},
}

func normalizeAboutPage(raw map[string]any) models.AboutPage {
	defaults := models.DefaultAboutPage()
	if raw == nil {
		return defaults
	}
	page := models.AboutPage{
		Title:        localizedText(raw, aboutPageKeys.title, defaults.Title),
		Subtitle:     localizedText(raw, aboutPageKeys.subtitle, defaults.Subtitle),
		MissionTitle: localizedText(raw, aboutPageKeys.missionTitle, defaults.MissionTitle),
		MissionText:  localizedText(raw, aboutPageKeys.missionText, defaults.MissionText),
		Stats: models.Stats{
			Years:     intField(raw, "statsYears", defaults.Stats.Years),
			Artists:   intField(raw, "statsArtists", defaults.Stats.Artists),
			Festivals: intField(raw, "statsFestivals", defaults.Stats.Festivals),
			Countries: intField(raw, "statsCountries", defaults.Stats.Countries),
		},
		SEO: parseSEO(raw["seo"]),
	}
	for i := range aboutPageKeys.services {
		page.Services[i] = models.Service{
			Title: localizedText(raw, aboutPageKeys.services[i].title, defaults.Services[i].Title),
			Text:  localizedText(raw, aboutPageKeys.services[i].text, defaults.Services[i].Text),
		}
	}
	return page
}

// ---- Contact page ----

var contactPageKeys = struct {
	title, subtitle, responseTimeTitle, responseTimeText          localeKeys
	formName, formEmail, formCountry, formDate, formArtist        localeKeys
	formMessage, formSubmit, formSuccessMessage, formErrorMessage localeKeys
}{
	title:              localeKeys{"titleEs", "titleEn", "titleFr", "titleIt"},
	subtitle:           localeKeys{"subtitleEs", "subtitleEn", "subtitleFr", "subtitleIt"},
	responseTimeTitle:  localeKeys{"responseTimeTitleEs", "responseTimeTitleEn", "responseTimeTitleFr", "responseTimeTitleIt"},
	responseTimeText:   localeKeys{"responseTimeTextEs", "responseTimeTextEn", "responseTimeTextFr", "responseTimeTextIt"},
	formName:           localeKeys{"formNameLabelEs", "formNameLabelEn", "formNameLabelFr", "formNameLabelIt"},
	formEmail:          localeKeys{"formEmailLabelEs", "formEmailLabelEn", "formEmailLabelFr", "formEmailLabelIt"},
	formCountry:        localeKeys{"formCountryLabelEs", "formCountryLabelEn", "formCountryLabelFr", "formCountryLabelIt"},
	formDate:           localeKeys{"formDateLabelEs", "formDateLabelEn", "formDateLabelFr", "formDateLabelIt"},
	formArtist:         localeKeys{"formArtistLabelEs", "formArtistLabelEn", "formArtistLabelFr", "formArtistLabelIt"},
	formMessage:        localeKeys{"formMessageLabelEs", "formMessageLabelEn", "formMessageLabelFr", "formMessageLabelIt"},
	formSubmit:         localeKeys{"formSubmitButtonEs", "formSubmitButtonEn", "formSubmitButtonFr", "formSubmitButtonIt"},
	formSuccessMessage: localeKeys{"formSuccessMessageEs", "formSuccessMessageEn", "formSuccessMessageFr", "formSuccessMessageIt"},
	formErrorMessage:   localeKeys{"formErrorMessageEs", "formErrorMessageEn", "formErrorMessageFr", "formErrorMessageIt"},
}

func normalizeContactPage(raw map[string]any) models.ContactPage {
	defaults := models.DefaultContactPage()
	if raw == nil {
		return defaults
	}
	return models.ContactPage{
		Title:             localizedText(raw, contactPageKeys.title, defaults.Title),
		Subtitle:          localizedText(raw, contactPageKeys.subtitle, defaults.Subtitle),
		Email:             firstNonEmpty(strField(raw, "email"), defaults.Email),
		Phone:             firstNonEmpty(strField(raw, "phone"), defaults.Phone),
		Location:          firstNonEmpty(strField(raw, "location"), defaults.Location),
		ResponseTimeTitle: localizedText(raw, contactPageKeys.responseTimeTitle, defaults.ResponseTimeTitle),
		ResponseTimeText:  localizedText(raw, contactPageKeys.responseTimeText, defaults.ResponseTimeText),
		FormLabels: models.FormLabels{
			Name:    localizedText(raw, contactPageKeys.formName, defaults.FormLabels.Name),
			Email:   localizedText(raw, contactPageKeys.formEmail, defaults.FormLabels.Email),
			Country: localizedText(raw, contactPageKeys.formCountry, defaults.FormLabels.Country),
			Date:    localizedText(raw, contactPageKeys.formDate, defaults.FormLabels.Date),
			Artist:  localizedText(raw, contactPageKeys.formArtist, defaults.FormLabels.Artist),
			Message: localizedText(raw, contactPageKeys.formMessage, defaults.FormLabels.Message),
			Submit:  localizedText(raw, contactPageKeys.formSubmit, defaults.FormLabels.Submit),
		},
		SuccessMessage: localizedText(raw, contactPageKeys.formSuccessMessage, defaults.SuccessMessage),
		ErrorMessage:   localizedText(raw, contactPageKeys.formErrorMessage, defaults.ErrorMessage),
		SEO:            parseSEO(raw["seo"]),
	}
}

// ---- Artists page ----

var artistsPageKeys = struct {
	title, subtitle, viewDetailsButton, ctaTitle, ctaSubtitle, salsaLabel, reggaetonLabel localeKeys
}{
	title:             localeKeys{"titleEs", "titleEn", "titleFr", "titleIt"},
	subtitle:          localeKeys{"subtitleEs", "subtitleEn", "subtitleFr", "subtitleIt"},
	viewDetailsButton: localeKeys{"viewDetailsButtonEs", "viewDetailsButtonEn", "viewDetailsButtonFr", "viewDetailsButtonIt"},
	ctaTitle:          localeKeys{"ctaTitleEs", "ctaTitleEn", "ctaTitleFr", "ctaTitleIt"},
	ctaSubtitle:       localeKeys{"ctaSubtitleEs", "ctaSubtitleEn", "ctaSubtitleFr", "ctaSubtitleIt"},
	salsaLabel:        localeKeys{"salsaLabelEs", "salsaLabelEn", "salsaLabelFr", "salsaLabelIt"},
	reggaetonLabel:    localeKeys{"reggaetonLabelEs", "reggaetonLabelEn", "reggaetonLabelFr", "reggaetonLabelIt"},
}

func normalizeArtistsPage(raw map[string]any) models.ArtistsPage {
	defaults := models.DefaultArtistsPage()
	if raw == nil {
		return defaults
	}
	return models.ArtistsPage{
		Title:             localizedText(raw, artistsPageKeys.title, defaults.Title),
		Subtitle:          localizedText(raw, artistsPageKeys.subtitle, defaults.Subtitle),
		ViewDetailsButton: localizedText(raw, artistsPageKeys.viewDetailsButton, defaults.ViewDetailsButton),
		CTATitle:          localizedText(raw, artistsPageKeys.ctaTitle, defaults.CTATitle),
		CTASubtitle:       localizedText(raw, artistsPageKeys.ctaSubtitle, defaults.CTASubtitle),
		SalsaLabel:        localizedText(raw, artistsPageKeys.salsaLabel, defaults.SalsaLabel),
		ReggaetonLabel:    localizedText(raw, artistsPageKeys.reggaetonLabel, defaults.ReggaetonLabel),
		SEO:               parseSEO(raw["seo"]),
	}
}

// ---- Site settings ----

var siteSettingsKeys = struct {
	navHome, navArtists, navAbout, navContact, footerDescription, footerCopyright localeKeys
}{
	navHome:           localeKeys{"navHomeEs", "navHomeEn", "navHomeFr", "navHomeIt"},
	navArtists:        localeKeys{"navArtistsEs", "navArtistsEn", "navArtistsFr", "navArtistsIt"},
	navAbout:          localeKeys{"navAboutEs", "navAboutEn", "navAboutFr", "navAboutIt"},
	navContact:        localeKeys{"navContactEs", "navContactEn", "navContactFr", "navContactIt"},
	footerDescription: localeKeys{"footerDescriptionEs", "footerDescriptionEn", "footerDescriptionFr", "footerDescriptionIt"},
	footerCopyright:   localeKeys{"footerCopyrightEs", "footerCopyrightEn", "footerCopyrightFr", "footerCopyrightIt"},
}

func normalizeSiteSettings(raw map[string]any) models.SiteSettings {
	defaults := models.DefaultSiteSettings()
	if raw == nil {
		return defaults
	}
	return models.SiteSettings{
		CompanyName: firstNonEmpty(strField(raw, "companyName"), defaults.CompanyName),
		Logo:        imageURL(raw["logo"]),
		Email:       firstNonEmpty(strField(raw, "email"), defaults.Email),
		Phone:       firstNonEmpty(strField(raw, "phone"), defaults.Phone),
		Location:    firstNonEmpty(strField(raw, "location"), defaults.Location),
		Instagram:   strField(raw, "instagram"),
		Facebook:    strField(raw, "facebook"),
		YouTube:     strField(raw, "youtube"),
		Nav: models.NavLabels{
			Home:    localizedText(raw, siteSettingsKeys.navHome, defaults.Nav.Home),
			Artists: localizedText(raw, siteSettingsKeys.navArtists, defaults.Nav.Artists),
			About:   localizedText(raw, siteSettingsKeys.navAbout, defaults.Nav.About),
			Contact: localizedText(raw, siteSettingsKeys.navContact, defaults.Nav.Contact),
		},
		FooterDescription: localizedText(raw, siteSettingsKeys.footerDescription, defaults.FooterDescription),
		FooterCopyright:   localizedText(raw, siteSettingsKeys.footerCopyright, defaults.FooterCopyright),
	}
}
