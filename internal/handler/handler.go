package handler

import (
	"sync"
	"time"

	"loginscreen/internal/domain"
	"loginscreen/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender delivers messages outside of an update context
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// session is one chat user's login screen
type session struct {
	userID  int64
	vm      *service.LoginViewModel
	renders chan domain.Snapshot

	// owned by the view-model observer
	lastState domain.ScreenState
}

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	sender         Sender
	attemptService *service.AttemptService
	loginDelay     time.Duration
	logger         *zap.Logger

	sessions   map[int64]*session
	sessionMux sync.Mutex

	// Per-user presentation state (input focus, password visibility)
	states   map[int64]*domain.SessionData
	stateMux sync.RWMutex

	wg sync.WaitGroup
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	attemptService *service.AttemptService,
	loginDelay time.Duration,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:            bot,
		attemptService: attemptService,
		loginDelay:     loginDelay,
		logger:         logger,
		sessions:       make(map[int64]*session),
		states:         make(map[int64]*domain.SessionData),
	}
	if bot != nil {
		h.sender = bot
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/history", h.handleHistory)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnFocusEmail, h.handleFocusEmail)
	h.bot.Handle(&btnFocusPassword, h.handleFocusPassword)
	h.bot.Handle(&btnTogglePassword, h.handleTogglePassword)
	h.bot.Handle(&btnLogin, h.handleLogin)
	h.bot.Handle(&btnRetry, h.handleRetry)
	h.bot.Handle(&btnLogout, h.handleRetry)

	// Generic callback handler for buttons whose Unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// EnsureSession opens the login screen of a user if it is not open yet
func (h *Handler) EnsureSession(userID int64) {
	h.session(userID)
}

// session returns the user's login screen, opening it on first use
func (h *Handler) session(userID int64) *session {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	if s, exists := h.sessions[userID]; exists {
		return s
	}

	var recorder service.AttemptRecorder
	if h.attemptService != nil {
		recorder = h.attemptService
	}

	s := &session{
		userID: userID,
		vm: service.NewLoginViewModel(service.LoginOptions{
			UserID:   userID,
			Delay:    h.loginDelay,
			Recorder: recorder,
		}, h.logger),
		renders:   make(chan domain.Snapshot, 8),
		lastState: domain.ScreenIdle,
	}

	// Push the outcome screen when the simulated login lands.
	// Idle and Loading are rendered by the handler that caused them.
	s.vm.Observe(func(snap domain.Snapshot) {
		if snap.State == s.lastState {
			return
		}
		s.lastState = snap.State
		if snap.State != domain.ScreenSuccess && snap.State != domain.ScreenError {
			return
		}
		select {
		case s.renders <- snap:
		default:
			h.logger.Warn("Render dropped, queue full", zap.Int64("user_id", userID))
		}
	})

	h.sessions[userID] = s

	h.wg.Add(1)
	go h.run(s)

	h.logger.Info("Login screen opened", zap.Int64("user_id", userID))
	return s
}

// run delivers state-change renders and notifications of one session
func (h *Handler) run(s *session) {
	defer h.wg.Done()

	notifications := s.vm.Notifications()
	for {
		select {
		case snap := <-s.renders:
			text, markup := renderScreen(snap, *h.GetState(s.userID))
			h.send(s.userID, text, markup)

		case n, ok := <-notifications:
			if !ok {
				return
			}
			h.send(s.userID, renderNotification(n), nil)
		}
	}
}

func (h *Handler) send(userID int64, text string, markup *tele.ReplyMarkup) {
	if h.sender == nil {
		return
	}
	if _, err := h.sender.Send(tele.ChatID(userID), text, sendOptions(markup)...); err != nil {
		h.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}
}

// Close closes every open login screen and waits for their delivery loops
func (h *Handler) Close() {
	h.sessionMux.Lock()
	sessions := h.sessions
	h.sessions = make(map[int64]*session)
	h.sessionMux.Unlock()

	for _, s := range sessions {
		s.vm.Close()
	}
	h.wg.Wait()
}

// GetState returns user's presentation state
func (h *Handler) GetState(userID int64) *domain.SessionData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.SessionData{Focus: domain.FieldEmail}
	}
	copied := *state
	return &copied
}

// SetState sets user's presentation state
func (h *Handler) SetState(userID int64, state *domain.SessionData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to typing the email with a hidden password
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.SessionData{Focus: domain.FieldEmail})
}

// Inline keyboard buttons
var (
	btnFocusEmail = tele.Btn{
		Unique: "focus_email",
		Text:   "✉️ Email",
	}
	btnFocusPassword = tele.Btn{
		Unique: "focus_password",
		Text:   "🔑 Password",
	}
	btnTogglePassword = tele.Btn{
		Unique: "toggle_password",
		Text:   "👁 Show password",
	}
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "➡️ Login",
	}
	btnRetry = tele.Btn{
		Unique: "retry",
		Text:   "🔄 Retry",
	}
	btnLogout = tele.Btn{
		Unique: "logout",
		Text:   "🚪 Log out",
	}
)
