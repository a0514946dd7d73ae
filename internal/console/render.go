package console

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"loginscreen/internal/domain"
)

func renderScreen(snap domain.Snapshot, passwordVisible bool) string {
	switch snap.State {
	case domain.ScreenLoading:
		return "Logging in..."

	case domain.ScreenError:
		return "Something went wrong, please try again...\n(type retry)"

	case domain.ScreenSuccess:
		return fmt.Sprintf("Welcome Home\nYour email is: %s\nand \nPassword is: %s\n(type logout)",
			snap.Credentials.Email, snap.Credentials.Password)
	}

	var b strings.Builder
	b.WriteString("== Login ==\n")
	b.WriteString("Email Address: " + displayValue(snap.Credentials.Email) + "\n")
	if snap.EmailHint != "" {
		b.WriteString("  ! " + snap.EmailHint + "\n")
	}

	password := snap.Credentials.Password
	if !passwordVisible {
		password = maskPassword(password)
	}
	b.WriteString("Password: " + displayValue(password))
	if snap.PasswordHint != "" {
		b.WriteString("\n  ! " + snap.PasswordHint)
	}
	return b.String()
}

func renderNotification(n domain.Notification) string {
	return fmt.Sprintf("[%s] %s", n.Kind, n.Message)
}

func maskPassword(password string) string {
	return strings.Repeat("*", utf8.RuneCountInString(password))
}

func displayValue(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
