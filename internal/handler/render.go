package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"loginscreen/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const (
	textLoading = "⏳ Logging in..."
	textError   = "Something went wrong, please try again..."
	emptyField  = "—"
)

// renderScreen builds the message for the current screen state
func renderScreen(snap domain.Snapshot, data domain.SessionData) (string, *tele.ReplyMarkup) {
	switch snap.State {
	case domain.ScreenLoading:
		return textLoading, nil

	case domain.ScreenError:
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnRetry))
		return textError, markup

	case domain.ScreenSuccess:
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnLogout))
		text := fmt.Sprintf("🏠 Welcome Home\nYour email is: %s\nand \nPassword is: %s",
			snap.Credentials.Email, snap.Credentials.Password)
		return text, markup

	default:
		return renderIdle(snap, data)
	}
}

func renderIdle(snap domain.Snapshot, data domain.SessionData) (string, *tele.ReplyMarkup) {
	var b strings.Builder

	b.WriteString("🔐 Login\n\n")

	b.WriteString("Email Address: " + displayValue(snap.Credentials.Email) + "\n")
	if snap.EmailHint != "" {
		b.WriteString("⚠️ " + snap.EmailHint + "\n")
	}

	password := snap.Credentials.Password
	if !data.PasswordVisible {
		password = maskPassword(password)
	}
	b.WriteString("Password: " + displayValue(password) + "\n")
	if snap.PasswordHint != "" {
		b.WriteString("⚠️ " + snap.PasswordHint + "\n")
	}

	switch data.Focus {
	case domain.FieldEmail:
		b.WriteString("\n✏️ Send your email address")
	case domain.FieldPassword:
		b.WriteString("\n✏️ Send your password")
	}

	toggle := btnTogglePassword
	if data.PasswordVisible {
		toggle.Text = "🙈 Hide password"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnFocusEmail, btnFocusPassword),
		markup.Row(toggle),
		markup.Row(btnLogin),
	)
	return b.String(), markup
}

// renderNotification formats a one-shot notification as a chat message
func renderNotification(n domain.Notification) string {
	if n.Kind == domain.NotificationSnackbar {
		return "📣 " + n.Message
	}
	return "💬 " + n.Message
}

// renderHistory formats the attempt journal of a user
func renderHistory(attempts []domain.Attempt) string {
	if len(attempts) == 0 {
		return "No login attempts yet"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 Last login attempts (%d):\n\n", len(attempts))
	for i, a := range attempts {
		fmt.Fprintf(&b, "%d. %s — %s — %s\n", i+1, a.DisplayTime(), displayValue(a.Email), outcomeLabel(a.Outcome))
	}
	return b.String()
}

func outcomeLabel(outcome domain.AttemptOutcome) string {
	switch outcome {
	case domain.OutcomeSuccess:
		return "✅ success"
	case domain.OutcomeError:
		return "❌ error"
	default:
		return "⛔ rejected"
	}
}

func maskPassword(password string) string {
	return strings.Repeat("•", utf8.RuneCountInString(password))
}

func displayValue(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

// sendOptions avoids handing telebot a nil markup
func sendOptions(markup *tele.ReplyMarkup) []interface{} {
	if markup == nil {
		return nil
	}
	return []interface{}{markup}
}
