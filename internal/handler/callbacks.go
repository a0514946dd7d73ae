package handler

import (
	"strings"
	"unicode"

	"loginscreen/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Pressing the same button twice renders the same screen
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Screen unchanged, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// showScreen edits the pressed message in place, or sends a new one for commands
func (h *Handler) showScreen(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, sendOptions(markup)...); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, sendOptions(markup)...)
		}
		return c.Respond()
	}
	return c.Send(text, sendOptions(markup)...)
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	action := callback.Unique
	if action == "" {
		action = data
	}

	switch action {
	case btnFocusEmail.Unique:
		return h.handleFocusEmail(c)
	case btnFocusPassword.Unique:
		return h.handleFocusPassword(c)
	case btnTogglePassword.Unique:
		return h.handleTogglePassword(c)
	case btnLogin.Unique:
		return h.handleLogin(c)
	case btnRetry.Unique, btnLogout.Unique:
		return h.handleRetry(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleFocusEmail makes the next typed message edit the email
func (h *Handler) handleFocusEmail(c tele.Context) error {
	return h.setFocus(c, domain.FieldEmail)
}

// handleFocusPassword makes the next typed message edit the password
func (h *Handler) handleFocusPassword(c tele.Context) error {
	return h.setFocus(c, domain.FieldPassword)
}

func (h *Handler) setFocus(c tele.Context, field domain.InputField) error {
	userID := c.Sender().ID
	s := h.session(userID)

	state := h.GetState(userID)
	state.Focus = field
	h.SetState(userID, state)

	text, markup := renderScreen(s.vm.Snapshot(), *state)
	return h.showScreen(c, userID, text, markup)
}

// handleTogglePassword shows or hides the typed password
func (h *Handler) handleTogglePassword(c tele.Context) error {
	userID := c.Sender().ID
	s := h.session(userID)

	state := h.GetState(userID)
	state.PasswordVisible = !state.PasswordVisible
	h.SetState(userID, state)

	text, markup := renderScreen(s.vm.Snapshot(), *state)
	return h.showScreen(c, userID, text, markup)
}

// handleLogin submits the typed credentials
func (h *Handler) handleLogin(c tele.Context) error {
	userID := c.Sender().ID
	s := h.session(userID)

	s.vm.Submit()

	// Rejected submits stay idle with fresh hints; the toast arrives separately.
	// Accepted ones show the loading screen until the outcome is pushed.
	text, markup := renderScreen(s.vm.Snapshot(), *h.GetState(userID))
	return h.showScreen(c, userID, text, markup)
}

// handleRetry brings the user back to the login form
func (h *Handler) handleRetry(c tele.Context) error {
	userID := c.Sender().ID
	s := h.session(userID)

	s.vm.RestoreIdle()

	h.logger.Info("Login screen restored", zap.Int64("user_id", userID))

	text, markup := renderScreen(s.vm.Snapshot(), *h.GetState(userID))
	return h.showScreen(c, userID, text, markup)
}
