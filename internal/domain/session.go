package domain

// InputField is the field the next typed chat message edits
type InputField string

const (
	FieldNone     InputField = "none"
	FieldEmail    InputField = "email"
	FieldPassword InputField = "password"
)

// SessionData holds presentation-only state of one chat user's login screen
type SessionData struct {
	Focus           InputField
	PasswordVisible bool
}
