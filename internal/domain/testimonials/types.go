package testimonials

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus accepts only the three moderation states. Any state may move
// to any other.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

type Testimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Rating    int       `json:"rating"` // 1-5
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicTestimonial is the shape served on the public read path.
type PublicTestimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (t Testimonial) Public() PublicTestimonial {
	return PublicTestimonial{
		ID:        t.ID,
		Name:      t.Name,
		Rating:    t.Rating,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
	}
}

type Statistics struct {
	TotalCount    int64   `json:"totalCount"`
	AverageRating float64 `json:"averageRating"`
	ApprovedCount int64   `json:"approvedCount"`
	RecentCount   int64   `json:"recentCount"`
}

// SubmitInput is a raw public submission. Rating stays textual until
// validation decides whether it converts to an integer.
type SubmitInput struct {
	Name    string
	Email   string
	Rating  string
	Message string
	IP      string
}

type SubmitResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
