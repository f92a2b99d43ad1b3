package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cubita-site/pkg/services"
)

const resolverKey = "contentResolver"

// RequestID tags every request with an id for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// ContentScope attaches a fresh Resolver to each request. The resolver is
// the memoization scope: it lives exactly as long as the request, so memoized
// content never leaks between requests.
func ContentScope(client *services.StrapiClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(resolverKey, services.NewResolver(client))
		c.Next()
	}
}

func resolverFrom(c *gin.Context) *services.Resolver {
	return c.MustGet(resolverKey).(*services.Resolver)
}
