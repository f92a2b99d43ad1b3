package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"cubita-site/pkg/logger"
	"cubita-site/pkg/models"
)

// Resolver exposes the content operations used to build a page. One Resolver
// is created per request; repeated calls to the same operation within that
// request are memoized and never re-hit the network. The memo scope must not
// outlive the request, so a Resolver is never stored globally.
//
// Fetch failures are logged and degrade to the type's default record (or an
// empty list); no network error escapes a resolver.
type Resolver struct {
	client *StrapiClient

	mu   sync.Mutex
	memo map[string]memoEntry
}

type memoEntry struct {
	val any
	err error
}

func NewResolver(client *StrapiClient) *Resolver {
	return &Resolver{
		client: client,
		memo:   make(map[string]memoEntry),
	}
}

// memoize caches the result of fn under key. The lock is not held while fn
// runs: two concurrent callers for the same key may both fetch, and the last
// writer wins. That is a performance trade, not a correctness issue, since
// resolver results for a key are identical within a request.
func memoize[T any](r *Resolver, key string, fn func() (T, error)) (T, error) {
	r.mu.Lock()
	if e, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return e.val.(T), e.err
	}
	r.mu.Unlock()

	val, err := fn()

	r.mu.Lock()
	r.memo[key] = memoEntry{val: val, err: err}
	r.mu.Unlock()
	return val, err
}

// fetchMap fetches a single-record resource and decodes it into a raw field
// map. A nil map signals total failure and selects the default record.
func (r *Resolver) fetchMap(ctx context.Context, resource, path string) map[string]any {
	raw, err := r.client.Fetch(ctx, path)
	if err != nil {
		logger.Warn("content fetch failed", "resource", resource, "error", err)
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		logger.Warn("content decode failed", "resource", resource, "error", err)
		return nil
	}
	return m
}

// fetchList fetches a collection resource and decodes it into raw item maps.
func (r *Resolver) fetchList(ctx context.Context, resource, path string) ([]map[string]any, error) {
	raw, err := r.client.Fetch(ctx, path)
	if err != nil {
		logger.Warn("content fetch failed", "resource", resource, "error", err)
		return nil, err
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("content decode failed", "resource", resource, "error", err)
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstreamUnavailable, err)
	}
	return items, nil
}

// Artists returns the full catalog sorted by name. Empty on failure.
func (r *Resolver) Artists(ctx context.Context) []models.Artist {
	artists, _ := memoize(r, "artists", func() ([]models.Artist, error) {
		items, err := r.fetchList(ctx, "artists", "/artists?populate=*&sort=name:asc")
		if err != nil {
			return []models.Artist{}, nil
		}
		out := make([]models.Artist, 0, len(items))
		for _, item := range items {
			out = append(out, normalizeArtist(item))
		}
		return out, nil
	})
	return artists
}

// ArtistBySlug looks up a single artist. It returns ErrArtistNotFound when
// the fetch succeeded but no artist matched, and ErrUpstreamUnavailable when
// the fetch itself failed.
func (r *Resolver) ArtistBySlug(ctx context.Context, slug string) (models.Artist, error) {
	return memoize(r, "artistBySlug:"+slug, func() (models.Artist, error) {
		path := fmt.Sprintf("/artists?filters[slug][$eq]=%s&populate=*", url.QueryEscape(slug))
		items, err := r.fetchList(ctx, "artists", path)
		if err != nil {
			return models.Artist{}, err
		}
		if len(items) == 0 {
			return models.Artist{}, fmt.Errorf("%w: slug %q", ErrArtistNotFound, slug)
		}
		return normalizeArtist(items[0]), nil
	})
}

// ArtistSlugs returns every artist slug, for static path generation.
func (r *Resolver) ArtistSlugs(ctx context.Context) []string {
	slugs, _ := memoize(r, "artistSlugs", func() ([]string, error) {
		items, err := r.fetchList(ctx, "artists", "/artists?fields[0]=slug")
		if err != nil {
			return []string{}, nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if slug, _ := item["slug"].(string); slug != "" {
				out = append(out, slug)
			}
		}
		return out, nil
	})
	return slugs
}

func (r *Resolver) HomePage(ctx context.Context) models.HomePage {
	page, _ := memoize(r, "homePage", func() (models.HomePage, error) {
		return normalizeHomePage(r.fetchMap(ctx, "home-page", "/home-page?populate=*")), nil
	})
	return page
}

func (r *Resolver) AboutPage(ctx context.Context) models.AboutPage {
	page, _ := memoize(r, "aboutPage", func() (models.AboutPage, error) {
		return normalizeAboutPage(r.fetchMap(ctx, "about-page", "/about-page?populate=*")), nil
	})
	return page
}

func (r *Resolver) ContactPage(ctx context.Context) models.ContactPage {
	page, _ := memoize(r, "contactPage", func() (models.ContactPage, error) {
		return normalizeContactPage(r.fetchMap(ctx, "contact-page", "/contact-page?populate=*")), nil
	})
	return page
}

func (r *Resolver) ArtistsPage(ctx context.Context) models.ArtistsPage {
	page, _ := memoize(r, "artistsPage", func() (models.ArtistsPage, error) {
		return normalizeArtistsPage(r.fetchMap(ctx, "artists-page", "/artists-page?populate=*")), nil
	})
	return page
}

func (r *Resolver) SiteSettings(ctx context.Context) models.SiteSettings {
	settings, _ := memoize(r, "siteSettings", func() (models.SiteSettings, error) {
		return normalizeSiteSettings(r.fetchMap(ctx, "site-setting", "/site-setting?populate=logo")), nil
	})
	return settings
}
