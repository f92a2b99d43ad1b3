package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"cubita-site/pkg/config"
	"cubita-site/pkg/handlers"
	"cubita-site/pkg/logger"
	"cubita-site/pkg/services"
)

func main() {
	// Initialize config and logging
	config.Init()
	logger.Setup(os.Stdout, "cubita-site")

	client, err := services.NewStrapiClient(config.StrapiURL, config.StrapiAPIToken)
	if err != nil {
		logger.Error("strapi client init failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	dispatcher := services.NewDispatcher(services.NewSMTPMailer())

	r := gin.Default()
	r.Use(handlers.RequestID())

	api := r.Group("/api")
	api.Use(handlers.ContentScope(client))
	{
		api.GET("/health", handlers.Health)

		api.GET("/artists", handlers.ListArtists)
		api.GET("/artists-slugs", handlers.ListArtistSlugs)
		api.GET("/artists/:slug", handlers.GetArtist)

		api.GET("/pages/home", handlers.GetHomePage)
		api.GET("/pages/about", handlers.GetAboutPage)
		api.GET("/pages/contact", handlers.GetContactPage)
		api.GET("/pages/artists", handlers.GetArtistsPage)

		api.GET("/site-settings", handlers.GetSiteSettings)

		api.POST("/contact", handlers.Contact(dispatcher))
	}

	if err := r.Run(":" + config.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
