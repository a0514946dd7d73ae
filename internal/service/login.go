package service

import (
	"math/rand"
	"sync"
	"time"

	"loginscreen/internal/domain"
	"loginscreen/internal/metrics"

	"go.uber.org/zap"
)

const (
	// DefaultLoginDelay is how long the simulated login call takes
	DefaultLoginDelay = 3 * time.Second

	// MessageInvalidCredentials is toasted when submit is rejected
	MessageInvalidCredentials = "Use valid credential!"

	notificationBuffer = 16
)

// OutcomePicker chooses the result of a simulated login call
type OutcomePicker func() domain.ScreenState

// RandomOutcome picks Success or Error with equal probability
func RandomOutcome() domain.ScreenState {
	if rand.Intn(2) == 0 {
		return domain.ScreenSuccess
	}
	return domain.ScreenError
}

// AttemptRecorder journals the result of every submit
type AttemptRecorder interface {
	Record(userID int64, email string, outcome domain.AttemptOutcome)
}

// LoginOptions configures a LoginViewModel. Zero values fall back to defaults.
type LoginOptions struct {
	UserID   int64
	Delay    time.Duration
	Outcome  OutcomePicker
	Recorder AttemptRecorder
}

type observer struct {
	id int
	fn func(domain.Snapshot)
}

// LoginViewModel owns the login screen state machine.
//
// All mutations are serialized behind one mutex. Observers are called
// synchronously with a fresh snapshot after every change and must not call
// back into the view-model.
type LoginViewModel struct {
	userID   int64
	delay    time.Duration
	pick     OutcomePicker
	recorder AttemptRecorder
	logger   *zap.Logger

	mu           sync.Mutex
	state        domain.ScreenState
	creds        domain.Credentials
	emailHint    string
	attempt      uint64
	observers    []observer
	nextObserver int
	closed       bool

	notifications chan domain.Notification
	done          chan struct{}
	wg            sync.WaitGroup
}

// NewLoginViewModel creates a login screen in the Idle state
func NewLoginViewModel(opts LoginOptions, logger *zap.Logger) *LoginViewModel {
	if opts.Delay <= 0 {
		opts.Delay = DefaultLoginDelay
	}
	if opts.Outcome == nil {
		opts.Outcome = RandomOutcome
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics.ActiveSessions.Inc()

	return &LoginViewModel{
		userID:        opts.UserID,
		delay:         opts.Delay,
		pick:          opts.Outcome,
		recorder:      opts.Recorder,
		logger:        logger,
		state:         domain.ScreenIdle,
		notifications: make(chan domain.Notification, notificationBuffer),
		done:          make(chan struct{}),
	}
}

// UpdateEmail replaces the stored email. The email hint is not recomputed.
func (vm *LoginViewModel) UpdateEmail(email string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.creds.Email = email
	vm.publishLocked()
}

// UpdatePassword replaces the stored password
func (vm *LoginViewModel) UpdatePassword(password string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.creds.Password = password
	vm.publishLocked()
}

// Submit validates the credentials and starts the simulated login call.
//
// Invalid input keeps the screen where it is, toasts and commits the email
// hint. Valid input moves to Loading; after the delay the screen moves to
// Success or Error. Submits outside the Idle screen are ignored.
func (vm *LoginViewModel) Submit() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	if vm.state != domain.ScreenIdle {
		state := vm.state
		vm.mu.Unlock()

		metrics.SubmitsTotal.WithLabelValues(metrics.ResultIgnored).Inc()
		vm.logger.Debug("Submit ignored outside idle screen",
			zap.Int64("user_id", vm.userID),
			zap.String("state", string(state)),
		)
		return
	}

	email := vm.creds.Email
	emailValid := IsValidEmail(email)

	if !emailValid || !IsValidPassword(vm.creds.Password) {
		vm.emitLocked(domain.ShowToast(MessageInvalidCredentials))
		vm.emailHint = EmailHint(email, emailValid)
		vm.publishLocked()
		vm.mu.Unlock()

		metrics.SubmitsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		vm.logger.Info("Submit rejected",
			zap.Int64("user_id", vm.userID),
			zap.Bool("email_valid", emailValid),
		)
		vm.record(email, domain.OutcomeRejected)
		return
	}

	vm.attempt++
	attempt := vm.attempt
	vm.setStateLocked(domain.ScreenLoading)
	vm.wg.Add(1)
	vm.mu.Unlock()

	metrics.SubmitsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	vm.logger.Info("Login started",
		zap.Int64("user_id", vm.userID),
		zap.Uint64("attempt", attempt),
		zap.Duration("delay", vm.delay),
	)

	go vm.complete(attempt, email)
}

// complete waits out the simulated call and lands its outcome
func (vm *LoginViewModel) complete(attempt uint64, email string) {
	defer vm.wg.Done()

	timer := time.NewTimer(vm.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-vm.done:
		return
	}

	outcome := vm.pick()

	vm.mu.Lock()
	if vm.closed || vm.attempt != attempt || vm.state != domain.ScreenLoading {
		vm.mu.Unlock()
		vm.logger.Debug("Login outcome discarded",
			zap.Int64("user_id", vm.userID),
			zap.Uint64("attempt", attempt),
		)
		return
	}
	vm.setStateLocked(outcome)
	vm.mu.Unlock()

	vm.logger.Info("Login finished",
		zap.Int64("user_id", vm.userID),
		zap.Uint64("attempt", attempt),
		zap.String("state", string(outcome)),
	)
	vm.record(email, domain.OutcomeFor(outcome))
}

// RestoreIdle moves the screen back to Idle from any state
func (vm *LoginViewModel) RestoreIdle() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.setStateLocked(domain.ScreenIdle)
}

// State returns the current screen state
func (vm *LoginViewModel) State() domain.ScreenState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Credentials returns the stored email and password
func (vm *LoginViewModel) Credentials() domain.Credentials {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.creds
}

// EmailHint returns the hint committed by the last rejected submit
func (vm *LoginViewModel) EmailHint() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.emailHint
}

// PasswordHint returns the hint for the current password
func (vm *LoginViewModel) PasswordHint() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return PasswordHint(vm.creds.Password)
}

// Snapshot returns a copy of everything a renderer needs
func (vm *LoginViewModel) Snapshot() domain.Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.snapshotLocked()
}

// Notifications returns the single-consumer notification stream.
// It is closed by Close.
func (vm *LoginViewModel) Notifications() <-chan domain.Notification {
	return vm.notifications
}

// Observe registers fn to be called with a snapshot after every change.
// The returned func unregisters it.
func (vm *LoginViewModel) Observe(fn func(domain.Snapshot)) func() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.nextObserver++
	id := vm.nextObserver
	vm.observers = append(vm.observers, observer{id: id, fn: fn})

	return func() {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		for i, o := range vm.observers {
			if o.id == id {
				vm.observers = append(vm.observers[:i], vm.observers[i+1:]...)
				return
			}
		}
	}
}

// Close stops a pending login call, drops observers and closes the
// notification stream. Safe to call more than once.
func (vm *LoginViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	vm.observers = nil
	close(vm.done)
	vm.mu.Unlock()

	vm.wg.Wait()
	close(vm.notifications)
	metrics.ActiveSessions.Dec()
}

func (vm *LoginViewModel) setStateLocked(state domain.ScreenState) {
	if vm.state == state {
		return
	}
	vm.state = state
	metrics.ObserveTransition(state)
	vm.publishLocked()
}

func (vm *LoginViewModel) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		State:        vm.state,
		Credentials:  vm.creds,
		EmailHint:    vm.emailHint,
		PasswordHint: PasswordHint(vm.creds.Password),
	}
}

func (vm *LoginViewModel) publishLocked() {
	if len(vm.observers) == 0 {
		return
	}
	snap := vm.snapshotLocked()
	for _, o := range vm.observers {
		o.fn(snap)
	}
}

// emitLocked queues n without blocking; a full queue drops it
func (vm *LoginViewModel) emitLocked(n domain.Notification) {
	select {
	case vm.notifications <- n:
		metrics.ObserveNotification(n.Kind, true)
	default:
		metrics.ObserveNotification(n.Kind, false)
		vm.logger.Warn("Notification dropped, queue full",
			zap.Int64("user_id", vm.userID),
			zap.String("kind", string(n.Kind)),
		)
	}
}

func (vm *LoginViewModel) record(email string, outcome domain.AttemptOutcome) {
	if vm.recorder == nil {
		return
	}
	vm.recorder.Record(vm.userID, email, outcome)
}
