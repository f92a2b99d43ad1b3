package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"cubita-site/pkg/config"
	"cubita-site/pkg/logger"
	"cubita-site/pkg/models"
)

// ValidationError reports the inquiry fields that failed validation, by
// their JSON names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "inquiry: invalid fields: " + strings.Join(e.Fields, ", ")
}

const notificationHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #000000, #D4AF37); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; border-top: none; border-radius: 0 0 8px 8px; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #000000; }
    .value { margin-top: 5px; }
    .message-box { background: white; padding: 15px; border-left: 4px solid #000000; margin-top: 10px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2 style="margin: 0;">Nueva Solicitud de Booking</h2>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Nombre:</div>
        <div class="value">{{.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
      </div>
      <div class="field">
        <div class="label">Pais/Ciudad:</div>
        <div class="value">{{.Country}}</div>
      </div>
      <div class="field">
        <div class="label">Fecha del Evento:</div>
        <div class="value">{{.EventDate}}</div>
      </div>
      <div class="field">
        <div class="label">Artista de Interes:</div>
        <div class="value">{{.Artist}}</div>
      </div>
      <div class="field">
        <div class="label">Mensaje:</div>
        <div class="message-box">{{.Message}}</div>
      </div>
    </div>
  </div>
</body>
</html>`

const confirmationHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #000000, #D4AF37); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
    .content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; border-top: none; border-radius: 0 0 8px 8px; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2 style="margin: 0;">Cubita Producciones</h2>
    </div>
    <div class="content">
      <p>Hola <strong>{{.Name}}</strong>,</p>
      <p>Gracias por contactarnos. Hemos recibido tu solicitud{{if .Artist}} sobre <strong>{{.Artist}}</strong>{{end}} y te responderemos en las proximas 24 horas.</p>
      <p>Mientras tanto, puedes explorar nuestro catalogo de artistas en nuestra web.</p>
      <p>Saludos cordiales,<br><strong>El equipo de Cubita Producciones</strong></p>
    </div>
    <div class="footer">
      <p>Cubita Producciones - Booking de Artistas Cubanos en Europa</p>
    </div>
  </div>
</body>
</html>`

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationHTML))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))
)

// Dispatcher validates a booking inquiry and sends the two transactional
// emails: the agency notification first, then the requester confirmation.
type Dispatcher struct {
	mailer   Mailer
	validate *validator.Validate
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	v := validator.New()
	// Report violations under the payload's JSON field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Dispatcher{mailer: mailer, validate: v}
}

type notificationData struct {
	Name      string
	Email     string
	Country   string
	EventDate string
	Artist    string
	Message   template.HTML
}

type confirmationData struct {
	Name   string
	Artist string
}

// nl2br escapes user text and turns literal newlines into break tags.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Submit runs the full dispatch: trim, validate, render, send both legs
// sequentially. A *ValidationError is returned before any send is attempted.
// If either send fails the whole operation fails; the failing leg is logged.
func (d *Dispatcher) Submit(ctx context.Context, payload models.InquiryPayload) error {
	payload.Trim()

	if err := d.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return &ValidationError{Fields: fields}
		}
		return fmt.Errorf("inquiry: validate: %w", err)
	}

	subject := "Solicitud de booking de " + payload.Name
	if payload.Artist != "" {
		subject += " - " + payload.Artist
	}

	var notification bytes.Buffer
	if err := notificationTmpl.Execute(&notification, notificationData{
		Name:      payload.Name,
		Email:     payload.Email,
		Country:   payload.Country,
		EventDate: firstNonEmpty(payload.EventDate, "No especificada"),
		Artist:    firstNonEmpty(payload.Artist, "No especificado"),
		Message:   nl2br(payload.Message),
	}); err != nil {
		return fmt.Errorf("inquiry: render notification: %w", err)
	}

	if err := d.mailer.Send(ctx, Message{
		From:    fmt.Sprintf("%q <%s>", payload.Name, config.EmailFrom),
		To:      config.EmailTo,
		ReplyTo: fmt.Sprintf("%q <%s>", payload.Name, payload.Email),
		Subject: subject,
		HTML:    notification.String(),
	}); err != nil {
		logger.Error("inquiry mail send failed", "leg", "notification", "error", err)
		return fmt.Errorf("inquiry: send notification: %w", err)
	}

	var confirmation bytes.Buffer
	if err := confirmationTmpl.Execute(&confirmation, confirmationData{
		Name:   payload.Name,
		Artist: payload.Artist,
	}); err != nil {
		return fmt.Errorf("inquiry: render confirmation: %w", err)
	}

	if err := d.mailer.Send(ctx, Message{
		From:    fmt.Sprintf("%q <%s>", config.SiteName, config.EmailFrom),
		To:      payload.Email,
		Subject: "Hemos recibido tu solicitud - Cubita Producciones",
		HTML:    confirmation.String(),
	}); err != nil {
		logger.Error("inquiry mail send failed", "leg", "confirmation", "error", err)
		return fmt.Errorf("inquiry: send confirmation: %w", err)
	}

	return nil
}
