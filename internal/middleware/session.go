package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionOpener opens a user's login screen on demand
type SessionOpener interface {
	EnsureSession(userID int64)
}

// SessionMiddleware makes sure every update has a login screen to act on
func SessionMiddleware(opener SessionOpener, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				// Channel posts and similar updates have no user behind them
				return nil
			}

			// Typed text may be a password, never log it
			logger.Debug("Update received",
				zap.Int64("user_id", sender.ID),
				zap.Bool("text", c.Text() != ""),
				zap.Bool("callback", c.Callback() != nil),
			)

			opener.EnsureSession(sender.ID)
			return next(c)
		}
	}
}
