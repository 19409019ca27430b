package inquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tenthouse/internal/sanitize"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const receivedMessage = "Thank you! Your inquiry has been received."

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

type Notifier interface {
	InquiryReceived(ctx context.Context, in Inquiry) error
}

type Service struct {
	store    Store
	notifier Notifier
	logger   *zap.SugaredLogger
	validate *validator.Validate
	maxLimit int
}

func NewService(store Store, notifier Notifier, logger *zap.SugaredLogger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		maxLimit: 50,
	}
}

type SubmitResult struct {
	Reference uuid.UUID `json:"reference"`
	Message   string    `json:"message"`
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	in.Name = sanitize.Plain(in.Name)
	in.Phone = sanitize.Plain(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.EventType = sanitize.Plain(in.EventType)
	in.Date = strings.TrimSpace(in.Date)
	in.Message = sanitize.Plain(in.Message)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ValidationError{Errors: describe(verrs)}
		}
		return nil, err
	}

	inq := &Inquiry{
		Reference: uuid.New(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		EventType: in.EventType,
		Message:   in.Message,
		IPAddress: in.IP,
	}
	if in.Date != "" {
		d, err := time.Parse(time.DateOnly, in.Date)
		if err == nil {
			inq.EventDate = &d
		}
	}

	if err := s.store.Create(ctx, inq); err != nil {
		s.logger.Errorw("error saving inquiry", "error", err)
		return nil, fmt.Errorf("save inquiry: %w", err)
	}

	if s.notifier != nil {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		if err := s.notifier.InquiryReceived(nctx, *inq); err != nil {
			s.logger.Warnw("inquiry notification failed", "reference", inq.Reference, "error", err)
		}
		cancel()
	}

	return &SubmitResult{Reference: inq.Reference, Message: receivedMessage}, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Inquiry, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

var fieldLabels = map[string]string{
	"Name":      "Name",
	"Phone":     "Phone",
	"Email":     "Email",
	"EventType": "Event type",
	"Date":      "Date",
	"Message":   "Message",
}

func describe(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			out = append(out, label+" is required")
		case "email":
			out = append(out, label+" must be a valid email address")
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s characters", label, fe.Param()))
		case "datetime":
			out = append(out, label+" must be in YYYY-MM-DD format")
		default:
			out = append(out, label+" is invalid")
		}
	}
	return out
}
