package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cubita-site/pkg/models"
	"cubita-site/pkg/services"
)

// Contact accepts a booking inquiry and dispatches the two transactional
// emails. Validation failures come back as 400 before any send; transport
// failures as a generic 500 so SMTP internals never reach the client.
func Contact(dispatcher *services.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.InquiryPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := dispatcher.Submit(c.Request.Context(), payload); err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  "missing or invalid fields",
					"fields": verr.Fields,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la solicitud"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Solicitud enviada exitosamente"})
	}
}
