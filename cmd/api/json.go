package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

// errorEnvelope keeps a machine-readable kind next to the human message.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeJSONError(w http.ResponseWriter, status int, kind, message string) error {
	return writeJSON(w, status, &errorEnvelope{
		Success: false,
		Kind:    kind,
		Message: message,
		Status:  status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}

// flexString accepts a JSON string or number, keeping the raw text so the
// domain validator decides whether it converts.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*f = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "["):
		return errors.New("expected a string or number")
	default:
		*f = flexString(raw)
	}
	return nil
}

// describeValidation turns validator errors into field messages.
func describeValidation(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			out = append(out, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "min":
			out = append(out, fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param()))
		case "gt":
			out = append(out, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return out
}
