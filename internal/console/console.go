package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"loginscreen/internal/domain"
	"loginscreen/internal/service"

	"go.uber.org/zap"
)

const helpText = `Commands:
  email <address>    set the email address
  password <value>   set the password
  login              submit the credentials
  retry              back to the form after an error
  logout             back to the form after a successful login
  toggle             show or hide the password
  show               print the current screen
  help               print this help
  quit               leave`

// Screen renders a login view-model on a terminal
type Screen struct {
	vm     *service.LoginViewModel
	logger *zap.Logger

	// guards out and the presentation state below
	mu              sync.Mutex
	out             io.Writer
	passwordVisible bool
	lastState       domain.ScreenState
}

// NewScreen attaches a console screen to vm. Every state change is printed
// as soon as it happens, including the outcome of a pending login.
func NewScreen(vm *service.LoginViewModel, out io.Writer, logger *zap.Logger) *Screen {
	s := &Screen{
		vm:        vm,
		logger:    logger,
		out:       out,
		lastState: vm.State(),
	}

	vm.Observe(func(snap domain.Snapshot) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if snap.State == s.lastState {
			return
		}
		s.lastState = snap.State
		s.printLocked(renderScreen(snap, s.passwordVisible))
	})

	return s
}

// Run reads commands from in until quit, EOF or ctx is done
func (s *Screen) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.print("Type help for the list of commands.")
	s.show()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil

		case line := <-lines:
			quit := s.handle(line)
			s.drainNotifications()
			if quit {
				return nil
			}
		}
	}
}

// handle executes one command line and reports whether to quit
func (s *Screen) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	s.logger.Debug("Console command", zap.String("command", cmd))

	switch strings.ToLower(cmd) {
	case "email":
		s.vm.UpdateEmail(arg)
		s.print("Email Address: " + displayValue(arg))

	case "password":
		s.vm.UpdatePassword(arg)
		s.print("Password: " + displayValue(s.password(arg)))
		if hint := s.vm.PasswordHint(); hint != "" {
			s.print("  ! " + hint)
		}

	case "login":
		s.vm.Submit()
		if snap := s.vm.Snapshot(); snap.State == domain.ScreenIdle && snap.EmailHint != "" {
			s.print("  ! " + snap.EmailHint)
		}

	case "retry":
		s.restoreFrom(domain.ScreenError, "Nothing to retry.")

	case "logout":
		s.restoreFrom(domain.ScreenSuccess, "You are not logged in.")

	case "toggle":
		s.mu.Lock()
		s.passwordVisible = !s.passwordVisible
		s.mu.Unlock()
		s.show()

	case "show":
		s.show()

	case "help":
		s.print(helpText)

	case "quit", "exit":
		return true

	default:
		s.print(fmt.Sprintf("Unknown command %q, type help for the list of commands.", cmd))
	}

	return false
}

func (s *Screen) restoreFrom(state domain.ScreenState, otherwise string) {
	if s.vm.State() != state {
		s.print(otherwise)
		return
	}
	s.vm.RestoreIdle()
}

// drainNotifications prints every queued notification once
func (s *Screen) drainNotifications() {
	for {
		select {
		case n, ok := <-s.vm.Notifications():
			if !ok {
				return
			}
			s.print(renderNotification(n))
		default:
			return
		}
	}
}

func (s *Screen) show() {
	snap := s.vm.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.printLocked(renderScreen(snap, s.passwordVisible))
}

func (s *Screen) password(p string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.passwordVisible {
		return p
	}
	return maskPassword(p)
}

func (s *Screen) print(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.printLocked(text)
}

func (s *Screen) printLocked(text string) {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		s.logger.Warn("Failed to write to console", zap.Error(err))
	}
}
