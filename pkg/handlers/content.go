package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"cubita-site/pkg/models"
	"cubita-site/pkg/services"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func ListArtists(c *gin.Context) {
	artists := resolverFrom(c).Artists(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": artists})
}

func ListArtistSlugs(c *gin.Context) {
	slugs := resolverFrom(c).ArtistSlugs(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": slugs})
}

// GetArtist resolves a single artist by slug and derives its page metadata.
// A missing slug is a real 404, distinct from upstream being down.
func GetArtist(c *gin.Context) {
	slug := c.Param("slug")
	locale := models.ParseLocale(c.Query("locale"))

	artist, err := resolverFrom(c).ArtistBySlug(c.Request.Context(), slug)
	if errors.Is(err, services.ErrArtistNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content temporarily unavailable"})
		return
	}

	description := services.TruncateText(services.StripMarkdown(artist.Bio.In(locale)), 160)
	if description == "" {
		description = "Booking de " + artist.Name + ", artista cubano de " + artist.Genre + "."
	}
	meta := services.BuildMetadata(artist.SEO, locale, services.MetadataFallback{
		Title:       artist.Name + " - Cubita Producciones",
		Description: description,
	}, "/artistas/"+artist.Slug)

	c.JSON(http.StatusOK, gin.H{"data": artist, "meta": meta})
}

func GetSiteSettings(c *gin.Context) {
	settings := resolverFrom(c).SiteSettings(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

// pageResponse fetches a page record and the site settings concurrently
// (they are independent reads) and bundles the derived metadata.
func pageResponse[T any](c *gin.Context, path string, fallback services.MetadataFallback,
	fetch func(ctx context.Context, r *services.Resolver) (T, *models.SEO)) {

	r := resolverFrom(c)
	locale := models.ParseLocale(c.Query("locale"))

	var (
		page     T
		seo      *models.SEO
		settings models.SiteSettings
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		page, seo = fetch(ctx, r)
		return nil
	})
	g.Go(func() error {
		settings = r.SiteSettings(ctx)
		return nil
	})
	_ = g.Wait() // resolvers degrade to defaults instead of erroring

	meta := services.BuildMetadata(seo, locale, fallback, path)
	c.JSON(http.StatusOK, gin.H{"data": page, "settings": settings, "meta": meta})
}

func GetHomePage(c *gin.Context) {
	pageResponse(c, "", services.MetadataFallback{
		Title:       "Cubita Producciones - Booking de Artistas Cubanos",
		Description: "Agencia de booking de artistas cubanos de salsa y regueton para festivales y eventos en Europa.",
	}, func(ctx context.Context, r *services.Resolver) (models.HomePage, *models.SEO) {
		page := r.HomePage(ctx)
		return page, page.SEO
	})
}

func GetAboutPage(c *gin.Context) {
	pageResponse(c, "/sobre-nosotros", services.MetadataFallback{
		Title:       "Sobre Nosotros - Cubita Producciones",
		Description: "Mas de 30 anos de experiencia conectando el talento cubano con escenarios de todo el mundo.",
	}, func(ctx context.Context, r *services.Resolver) (models.AboutPage, *models.SEO) {
		page := r.AboutPage(ctx)
		return page, page.SEO
	})
}

func GetContactPage(c *gin.Context) {
	pageResponse(c, "/contacto", services.MetadataFallback{
		Title:       "Contacto - Cubita Producciones",
		Description: "Contacta con Cubita Producciones para booking de artistas cubanos en Europa.",
	}, func(ctx context.Context, r *services.Resolver) (models.ContactPage, *models.SEO) {
		page := r.ContactPage(ctx)
		return page, page.SEO
	})
}

func GetArtistsPage(c *gin.Context) {
	pageResponse(c, "/artistas", services.MetadataFallback{
		Title:       "Artistas - Cubita Producciones",
		Description: "Descubre los mejores artistas cubanos de salsa y regueton disponibles para booking en Europa.",
	}, func(ctx context.Context, r *services.Resolver) (models.ArtistsPage, *models.SEO) {
		page := r.ArtistsPage(ctx)
		return page, page.SEO
	})
}
