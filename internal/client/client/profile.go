package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/netops/internal/client/models"
)

var errMissingField = errors.New("missing required field")

// decodeProfile parses a profile document. Required fields must be present
// with the right JSON type; optional fields never fail and fall back to nil.
func decodeProfile(data []byte) (*models.UserProfile, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("profile is not a JSON object")
	}

	p := &models.UserProfile{}

	if err := required(doc, "id", &p.ID); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"userId", &p.UserID},
		{"fullName", &p.FullName},
		{"email", &p.Email},
		{"password", &p.Password},
	} {
		if err := required(doc, f.key, f.dst); err != nil {
			return nil, err
		}
	}

	p.PhoneNumber = optionalString(doc["phoneNumber"])
	p.Occupation = optionalString(doc["occupation"])
	p.Employer = optionalString(doc["employer"])
	p.Country = optionalString(doc["country"])
	p.Latitude = optionalFloat(doc["latitude"])
	p.Longitude = optionalFloat(doc["longitude"])

	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func required(doc map[string]json.RawMessage, key string, dst any) error {
	raw, ok := doc[key]
	if !ok || isNull(raw) {
		return fmt.Errorf("%w %q", errMissingField, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// optionalString accepts a string or any other scalar rendered as text.
func optionalString(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	text := strings.TrimSpace(string(raw))
	if text == "" || text[0] == '{' || text[0] == '[' {
		return nil
	}
	return &text
}

// optionalFloat accepts a JSON number or a numeric string.
func optionalFloat(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
