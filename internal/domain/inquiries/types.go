package inquiries

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is an event booking enquiry sent through the contact form.
type Inquiry struct {
	ID        int64      `json:"id"`
	Reference uuid.UUID  `json:"reference"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	EventType string     `json:"event_type,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
	Message   string     `json:"message"`
	IPAddress string     `json:"ip_address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type SubmitInput struct {
	Name      string `validate:"required,max=100"`
	Phone     string `validate:"required,max=30"`
	Email     string `validate:"required,email,max=255"`
	EventType string `validate:"max=100"`
	Date      string `validate:"omitempty,datetime=2006-01-02"`
	Message   string `validate:"required,max=2000"`
	IP        string `validate:"-"`
}
