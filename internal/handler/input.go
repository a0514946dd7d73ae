package handler

import (
	"strings"

	"loginscreen/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on the focused field
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	s := h.session(userID)
	focus := h.GetState(userID).Focus

	snap, data := h.applyInput(s, text)

	// Keep the typed password out of the chat history
	if focus == domain.FieldPassword && snap.State == domain.ScreenIdle {
		if err := c.Delete(); err != nil {
			h.logger.Debug("Failed to delete password message",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
		}
	}

	rendered, markup := renderScreen(snap, data)
	return c.Send(rendered, sendOptions(markup)...)
}

// applyInput writes typed text into the focused field. Input outside the
// idle screen is ignored.
func (h *Handler) applyInput(s *session, text string) (domain.Snapshot, domain.SessionData) {
	state := h.GetState(s.userID)

	if s.vm.State() != domain.ScreenIdle {
		return s.vm.Snapshot(), *state
	}

	switch state.Focus {
	case domain.FieldPassword:
		s.vm.UpdatePassword(text)

	default:
		// Email entered, move on to the password
		s.vm.UpdateEmail(text)
		state.Focus = domain.FieldPassword
		h.SetState(s.userID, state)
	}

	return s.vm.Snapshot(), *state
}
