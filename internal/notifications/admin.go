package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tenthouse/internal/domain/inquiries"
	"tenthouse/internal/domain/testimonials"
	"tenthouse/internal/mailer"

	"github.com/9ssi7/exponent"
)

// AdminNotifier alerts the site owner by email and, when device tokens are
// configured, by Expo push. Either channel may be absent.
type AdminNotifier struct {
	mail       mailer.Client
	recipient  string
	push       PushSender
	pushTokens []string
	registry   TokenRegistry
}

// TokenRegistry supplies device tokens registered at runtime.
type TokenRegistry interface {
	List(ctx context.Context) ([]string, error)
}

func NewAdminNotifier(mail mailer.Client, recipient string, push PushSender, pushTokens []string) *AdminNotifier {
	tokens := make([]string, 0, len(pushTokens))
	for _, t := range pushTokens {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return &AdminNotifier{
		mail:       mail,
		recipient:  recipient,
		push:       push,
		pushTokens: tokens,
	}
}

// WithRegistry adds runtime-registered tokens to the configured ones.
func (n *AdminNotifier) WithRegistry(r TokenRegistry) *AdminNotifier {
	n.registry = r
	return n
}

func (n *AdminNotifier) TestimonialSubmitted(ctx context.Context, t testimonials.Testimonial) error {
	title := "New Testimonial"
	body := fmt.Sprintf("%s left a %d-star review awaiting approval", t.Name, t.Rating)
	return n.fanOut(ctx, mailer.TestimonialSubmittedTemplate, t, title, body, map[string]string{
		"type": "testimonial",
		"id":   fmt.Sprint(t.ID),
	})
}

func (n *AdminNotifier) InquiryReceived(ctx context.Context, in inquiries.Inquiry) error {
	title := "New Inquiry"
	body := fmt.Sprintf("%s sent an inquiry", in.Name)
	if in.EventType != "" {
		body += " about a " + in.EventType
	}
	return n.fanOut(ctx, mailer.InquiryReceivedTemplate, in, title, body, map[string]string{
		"type":      "inquiry",
		"reference": in.Reference.String(),
	})
}

func (n *AdminNotifier) fanOut(ctx context.Context, template string, data any, title, body string, extra map[string]string) error {
	var errs []error

	if n.mail != nil && n.recipient != "" {
		if _, err := n.mail.Send(ctx, template, mailer.FromName, n.recipient, data); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}

	tokens, err := n.tokens(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("push tokens: %w", err))
	}

	if n.push != nil && len(tokens) > 0 {
		msgs := make([]*exponent.Message, 0, len(tokens))
		for _, t := range tokens {
			//wrap the string token in exponent.Token to satisfy the type
			token := exponent.Token(t)
			msgs = append(msgs, &exponent.Message{
				To:    []*exponent.Token{&token},
				Title: title,
				Body:  body,
				Data:  extra,
			})
		}
		if _, err := n.push.Publish(ctx, msgs); err != nil {
			errs = append(errs, fmt.Errorf("push: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (n *AdminNotifier) tokens(ctx context.Context) ([]string, error) {
	if n.registry == nil {
		return n.pushTokens, nil
	}
	registered, err := n.registry.List(ctx)

	seen := make(map[string]struct{}, len(n.pushTokens)+len(registered))
	out := make([]string, 0, len(n.pushTokens)+len(registered))
	for _, t := range append(append([]string{}, n.pushTokens...), registered...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, err
}
