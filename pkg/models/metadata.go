package models

// Metadata is the full per-page metadata bundle derived from an SEO record,
// shaped after the head tags the frontend renders.
type Metadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    string      `json:"keywords,omitempty"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
	Robots      Robots      `json:"robots"`
	Alternates  Alternates  `json:"alternates"`
}

// OGImage describes one Open Graph share image.
type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

type OpenGraph struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	SiteName    string    `json:"siteName"`
	Locale      string    `json:"locale"`
	Images      []OGImage `json:"images"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// GoogleBot carries the crawler-extension directives.
type GoogleBot struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	MaxImagePreview string `json:"max-image-preview"`
	MaxSnippet      int    `json:"max-snippet"`
}

type Robots struct {
	Index     bool      `json:"index"`
	Follow    bool      `json:"follow"`
	GoogleBot GoogleBot `json:"googleBot"`
}

// Alternates holds the canonical URL plus one alternate per locale.
type Alternates struct {
	Canonical string            `json:"canonical"`
	Languages map[string]string `json:"languages"`
}
