package testimonials

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidatorConfig holds the thresholds and block-list used by Validator.
type ValidatorConfig struct {
	NameMin    int
	NameMax    int
	MessageMin int
	MessageMax int
	RatingMin  int
	RatingMax  int
	SpamWords  []string
	MaxLinks   int
}

func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		NameMin:    2,
		NameMax:    100,
		MessageMin: 10,
		MessageMax: 1000,
		RatingMin:  1,
		RatingMax:  5,
		SpamWords:  []string{"viagra", "casino", "poker", "loan", "debt", "free money", "click here", "buy now"},
		MaxLinks:   2,
	}
}

var linkPattern = regexp.MustCompile(`https?://`)

type Validator struct {
	cfg ValidatorConfig
}

func NewValidator(cfg ValidatorConfig) *Validator {
	spam := make([]string, 0, len(cfg.SpamWords))
	for _, w := range cfg.SpamWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			spam = append(spam, w)
		}
	}
	cfg.SpamWords = spam
	return &Validator{cfg: cfg}
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate runs every rule and accumulates the failures; it never stops at
// the first one.
func (v *Validator) Validate(name, rating, message string) ValidationResult {
	errs := []string{}

	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errs = append(errs, "Name is required")
	case n < v.cfg.NameMin:
		errs = append(errs, fmt.Sprintf("Name must be at least %d characters long", v.cfg.NameMin))
	case n > v.cfg.NameMax:
		errs = append(errs, fmt.Sprintf("Name must be less than %d characters", v.cfg.NameMax))
	}

	if _, ok := v.ParseRating(rating); !ok {
		errs = append(errs, fmt.Sprintf("Rating must be between %d and %d", v.cfg.RatingMin, v.cfg.RatingMax))
	}

	message = strings.TrimSpace(message)
	switch n := utf8.RuneCountInString(message); {
	case n == 0:
		errs = append(errs, "Message is required")
	case n < v.cfg.MessageMin:
		errs = append(errs, fmt.Sprintf("Message must be at least %d characters long", v.cfg.MessageMin))
	case n > v.cfg.MessageMax:
		errs = append(errs, fmt.Sprintf("Message must be less than %d characters", v.cfg.MessageMax))
	}

	combined := strings.ToLower(name + " " + message)
	if v.containsSpam(combined) {
		errs = append(errs, "Your message contains inappropriate content")
	}
	if len(linkPattern.FindAllStringIndex(combined, -1)) > v.cfg.MaxLinks {
		errs = append(errs, "Your message contains too many links")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ParseRating converts a textual rating to an integer inside the configured
// range. Integral decimals such as "4.0" are accepted.
func (v *Validator) ParseRating(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	r, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f < float64(v.cfg.RatingMin) || f > float64(v.cfg.RatingMax) {
			return 0, false
		}
		r = int(f)
	}
	if r < v.cfg.RatingMin || r > v.cfg.RatingMax {
		return 0, false
	}
	return r, true
}

func (v *Validator) containsSpam(lowered string) bool {
	for _, w := range v.cfg.SpamWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
