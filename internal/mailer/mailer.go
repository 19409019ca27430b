package mailer

import (
	"context"
	"embed"
)

const (
	FromName                     = "Mahadev Tent House"
	maxRetires                   = 3
	TestimonialSubmittedTemplate = "testimonial_submitted.tmpl"
	InquiryReceivedTemplate      = "inquiry_received.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(ctx context.Context, templateFile, username, email string, data any) (int, error)
}
