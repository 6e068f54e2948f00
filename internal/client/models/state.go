// Package models holds the value types shared by the client layers: the UI
// state snapshot, its auth phase, the events the presentation layer emits
// and the user profile returned by the backend.
package models

// PhaseKind enumerates the auth workflow phases.
type PhaseKind int

const (
	PhaseIdle PhaseKind = iota
	PhaseLoading
	PhaseSignedIn
	PhaseRegistered
	PhaseProfileRetrieved
	PhaseError
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSignedIn:
		return "signed_in"
	case PhaseRegistered:
		return "registered"
	case PhaseProfileRetrieved:
		return "profile_retrieved"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// AuthPhase is the current stage of the auth/profile workflow. Message is
// only set for PhaseError. The zero value is Idle.
type AuthPhase struct {
	Kind    PhaseKind
	Message string
}

var (
	Idle             = AuthPhase{Kind: PhaseIdle}
	Loading          = AuthPhase{Kind: PhaseLoading}
	SignedIn         = AuthPhase{Kind: PhaseSignedIn}
	Registered       = AuthPhase{Kind: PhaseRegistered}
	ProfileRetrieved = AuthPhase{Kind: PhaseProfileRetrieved}
)

// Error returns the error phase carrying msg.
func Error(msg string) AuthPhase {
	return AuthPhase{Kind: PhaseError, Message: msg}
}

func (p AuthPhase) IsError() bool { return p.Kind == PhaseError }

// Display returns the status text shown to the user.
func (p AuthPhase) Display() string {
	switch p.Kind {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading..."
	case PhaseSignedIn:
		return "Signed in"
	case PhaseRegistered:
		return "Registered"
	case PhaseProfileRetrieved:
		return "Profile retrieved"
	case PhaseError:
		return p.Message
	}
	return ""
}

func (p AuthPhase) String() string {
	if p.Kind == PhaseError {
		return "error(" + p.Message + ")"
	}
	return p.Kind.String()
}

// UiState is an immutable snapshot of everything the screen renders.
// Callers get copies; the With* helpers return modified copies.
type UiState struct {
	FullName    string
	Email       string
	Password    string
	AuthState   AuthPhase
	UserID      *string
	ProfileInfo string
}

// NewUiState returns the session-start state.
func NewUiState() UiState {
	return UiState{AuthState: Idle}
}

func (s UiState) WithPhase(p AuthPhase) UiState {
	s.AuthState = p
	return s
}

func (s UiState) WithUserID(id string) UiState {
	s.UserID = &id
	return s
}

// HasUserID reports whether a login has stored an identifier.
func (s UiState) HasUserID() bool {
	return s.UserID != nil
}
