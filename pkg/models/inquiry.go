package models

import "strings"

// InquiryPayload is a submitted booking inquiry. It lives only for the
// duration of the dispatch; nothing is persisted.
type InquiryPayload struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Country   string `json:"country" validate:"required"`
	EventDate string `json:"eventDate"`
	Artist    string `json:"artist"`
	Message   string `json:"message" validate:"required"`
}

// Trim strips surrounding whitespace from every field so that blank-only
// input fails required-field validation.
func (p *InquiryPayload) Trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Country = strings.TrimSpace(p.Country)
	p.EventDate = strings.TrimSpace(p.EventDate)
	p.Artist = strings.TrimSpace(p.Artist)
	p.Message = strings.TrimSpace(p.Message)
}
