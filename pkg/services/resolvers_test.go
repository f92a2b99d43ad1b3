package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"cubita-site/pkg/models"
)

const artistsJSON = `{"data":[
	{"id":1,"documentId":"a1","name":"Alexander Abreu","slug":"alexander-abreu","genre":"salsa","bioEs":"Trompetista"},
	{"id":2,"documentId":"a2","name":"El Taiger","slug":"el-taiger","genre":"reggaeton","bioEs":"Reguetonero"}
]}`

func newFakeStrapi(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/artists", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if slug := r.URL.Query().Get("filters[slug][$eq]"); slug != "" {
			if slug == "el-taiger" {
				w.Write([]byte(`{"data":[{"id":2,"documentId":"a2","name":"El Taiger","slug":"el-taiger","genre":"reggaeton"}]}`))
				return
			}
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.Write([]byte(artistsJSON))
	})
	mux.HandleFunc("/api/home-page", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data":{"heroTitleEs":"Hola Cuba"}}`))
	})
	mux.HandleFunc("/api/site-setting", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data":{"companyName":"Cubita Producciones SRL"}}`))
	})
	return httptest.NewServer(mux)
}

func newTestResolver(t *testing.T, baseURL string) *Resolver {
	t.Helper()
	client, err := NewStrapiClient(baseURL, "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)
	return NewResolver(client)
}

func TestResolverArtists(t *testing.T) {
	var hits atomic.Int64
	srv := newFakeStrapi(t, &hits)
	defer srv.Close()

	r := newTestResolver(t, srv.URL)
	artists := r.Artists(context.Background())

	if len(artists) != 2 {
		t.Fatalf("got %d artists, want 2", len(artists))
	}
	if artists[0].Slug != "alexander-abreu" || artists[1].Genre != models.GenreReggaeton {
		t.Errorf("unexpected artists: %+v", artists)
	}
}

func TestResolverMemoization(t *testing.T) {
	var hits atomic.Int64
	srv := newFakeStrapi(t, &hits)
	defer srv.Close()

	r := newTestResolver(t, srv.URL)
	ctx := context.Background()

	first := r.HomePage(ctx)
	second := r.HomePage(ctx)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("memoized results differ")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("upstream hits = %d, want 1 (second call memoized)", got)
	}
}

func TestResolverArtistBySlug(t *testing.T) {
	var hits atomic.Int64
	srv := newFakeStrapi(t, &hits)
	defer srv.Close()

	r := newTestResolver(t, srv.URL)

	artist, err := r.ArtistBySlug(context.Background(), "el-taiger")
	if err != nil {
		t.Fatalf("ArtistBySlug: %v", err)
	}
	if artist.Name != "El Taiger" {
		t.Errorf("Name = %q", artist.Name)
	}
}

func TestResolverArtistBySlugNotFound(t *testing.T) {
	var hits atomic.Int64
	srv := newFakeStrapi(t, &hits)
	defer srv.Close()

	r := newTestResolver(t, srv.URL)

	_, err := r.ArtistBySlug(context.Background(), "unknown-slug")
	if !errors.Is(err, ErrArtistNotFound) {
		t.Errorf("err = %v, want ErrArtistNotFound", err)
	}
	if errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("not-found must be distinct from upstream failure")
	}
}

func TestResolverDegradesToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := newTestResolver(t, srv.URL)
	ctx := context.Background()

	if got := r.HomePage(ctx); !reflect.DeepEqual(got, models.DefaultHomePage()) {
		t.Errorf("HomePage on failure = %+v, want defaults", got)
	}
	if got := r.AboutPage(ctx); !reflect.DeepEqual(got, models.DefaultAboutPage()) {
		t.Errorf("AboutPage on failure = %+v, want defaults", got)
	}
	if got := r.ContactPage(ctx); !reflect.DeepEqual(got, models.DefaultContactPage()) {
		t.Errorf("ContactPage on failure = %+v, want defaults", got)
	}
	if got := r.ArtistsPage(ctx); !reflect.DeepEqual(got, models.DefaultArtistsPage()) {
		t.Errorf("ArtistsPage on failure = %+v, want defaults", got)
	}
	if got := r.SiteSettings(ctx); !reflect.DeepEqual(got, models.DefaultSiteSettings()) {
		t.Errorf("SiteSettings on failure = %+v, want defaults", got)
	}

	if got := r.Artists(ctx); got == nil || len(got) != 0 {
		t.Errorf("Artists on failure = %#v, want empty list", got)
	}
	if got := r.ArtistSlugs(ctx); got == nil || len(got) != 0 {
		t.Errorf("ArtistSlugs on failure = %#v, want empty list", got)
	}

	_, err := r.ArtistBySlug(ctx, "any")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("ArtistBySlug on failure = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestResolverArtistSlugs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"slug":"uno"},{"slug":""},{"name":"no-slug"},{"slug":"dos"}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(t, srv.URL)
	slugs := r.ArtistSlugs(context.Background())

	if !reflect.DeepEqual(slugs, []string{"uno", "dos"}) {
		t.Errorf("slugs = %v", slugs)
	}
}

func TestResolverSiteSettings(t *testing.T) {
	var hits atomic.Int64
	srv := newFakeStrapi(t, &hits)
	defer srv.Close()

	r := newTestResolver(t, srv.URL)
	settings := r.SiteSettings(context.Background())

	if settings.CompanyName != "Cubita Producciones SRL" {
		t.Errorf("CompanyName = %q", settings.CompanyName)
	}
	// Fields the upstream omitted fall back to defaults.
	if settings.Nav.Home.Es != "Inicio" {
		t.Errorf("Nav.Home.Es = %q, want default", settings.Nav.Home.Es)
	}
}
