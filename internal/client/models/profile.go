package models

import (
	"fmt"
	"strconv"
	"strings"
)

// UserProfile is the profile the backend returns for a user id. Pointer
// fields are optional and nil when the backend omits them.
type UserProfile struct {
	ID          int
	UserID      string
	FullName    string
	Email       string
	Password    string
	PhoneNumber *string
	Occupation  *string
	Employer    *string
	Country     *string
	Latitude    *float64
	Longitude   *float64
}

// Format renders the profile as multi-line text, one "Label: value" per line.
func (p UserProfile) Format() string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}
	line("User ID", p.UserID)
	line("Full Name", p.FullName)
	line("Email", p.Email)
	line("Phone Number", optString(p.PhoneNumber))
	line("Occupation", optString(p.Occupation))
	line("Employer", optString(p.Employer))
	line("Country", optString(p.Country))
	line("Latitude", optFloat(p.Latitude))
	line("Longitude", optFloat(p.Longitude))
	return b.String()
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
