package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	s := h.session(userID)
	h.ResetState(userID)

	text, markup := renderScreen(s.vm.Snapshot(), *h.GetState(userID))
	return c.Send(text, sendOptions(markup)...)
}

// handleHistory handles /history command
func (h *Handler) handleHistory(c tele.Context) error {
	userID := c.Sender().ID

	if h.attemptService == nil {
		return c.Send("History is not available.")
	}

	attempts, err := h.attemptService.History(userID)
	if err != nil {
		h.logger.Error("Failed to load attempt history",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Failed to load history. Try again later.")
	}

	return c.Send(renderHistory(attempts))
}
