package models

// Event is something the presentation layer reports to the state container.
// The set is closed: only the types below implement it.
type Event interface {
	event()
}

type FullNameChanged struct{ Text string }

type EmailChanged struct{ Text string }

type PasswordChanged struct{ Text string }

type RegisterClicked struct{}

type LoginClicked struct{}

type GetProfileClicked struct{}

func (FullNameChanged) event()   {}
func (EmailChanged) event()      {}
func (PasswordChanged) event()   {}
func (RegisterClicked) event()   {}
func (LoginClicked) event()      {}
func (GetProfileClicked) event() {}
