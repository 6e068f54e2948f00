package users

import "time"

// User is a backend account. PasswordHash is a bcrypt hash; the optional
// profile fields stay nil until set.
type User struct {
	ID           int
	UserID       string
	FullName     string
	Email        string
	PasswordHash string
	PhoneNumber  *string
	Occupation   *string
	Employer     *string
	Country      *string
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
}

// ProfileUpdate carries the optional fields a client may set. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	PhoneNumber *string
	Occupation  *string
	Employer    *string
	Country     *string
	Latitude    *float64
	Longitude   *float64
}

func (u *User) apply(p ProfileUpdate) {
	if p.PhoneNumber != nil {
		u.PhoneNumber = clone(p.PhoneNumber)
	}
	if p.Occupation != nil {
		u.Occupation = clone(p.Occupation)
	}
	if p.Employer != nil {
		u.Employer = clone(p.Employer)
	}
	if p.Country != nil {
		u.Country = clone(p.Country)
	}
	if p.Latitude != nil {
		u.Latitude = clone(p.Latitude)
	}
	if p.Longitude != nil {
		u.Longitude = clone(p.Longitude)
	}
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}
