package domain

// ScreenState is the coarse-grained mode the login screen is in
type ScreenState string

const (
	ScreenIdle    ScreenState = "idle"
	ScreenLoading ScreenState = "loading"
	ScreenSuccess ScreenState = "success"
	ScreenError   ScreenState = "error"
)

// Credentials holds what the user has typed so far
type Credentials struct {
	Email    string
	Password string
}

// Snapshot is a read-only copy of the login screen handed to renderers
type Snapshot struct {
	State        ScreenState
	Credentials  Credentials
	EmailHint    string
	PasswordHint string
}
