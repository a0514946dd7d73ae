package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"loginscreen/internal/domain"
	"loginscreen/internal/service"
	"loginscreen/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is written by the view-model observer and read by the test
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestScreen(t *testing.T, outcome domain.ScreenState, delay time.Duration) (*Screen, *service.LoginViewModel, *syncBuffer) {
	t.Helper()
	vm := service.NewLoginViewModel(service.LoginOptions{
		Delay:   delay,
		Outcome: testutil.FixedOutcome(outcome),
	}, testutil.NewTestLogger())
	t.Cleanup(vm.Close)

	out := &syncBuffer{}
	return NewScreen(vm, out, testutil.NewTestLogger()), vm, out
}

func run(t *testing.T, s *Screen, input string) {
	t.Helper()
	require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))
}

func TestScreen_InvalidLoginToasts(t *testing.T) {
	s, vm, out := newTestScreen(t, domain.ScreenSuccess, time.Second)

	run(t, s, "email john\npassword abc\nlogin\n")

	text := out.String()
	assert.Contains(t, text, "Email Address: john")
	assert.Contains(t, text, "Password: ***")
	assert.Contains(t, text, "  ! Enter at least 6 characters")
	assert.Contains(t, text, "  ! Invalid Email")
	assert.Equal(t, 1, strings.Count(text, "[toast] Use valid credential!"))
	assert.Equal(t, domain.ScreenIdle, vm.State())
}

func TestScreen_LoginSuccessAndLogout(t *testing.T) {
	s, vm, out := newTestScreen(t, domain.ScreenSuccess, 10*time.Millisecond)

	run(t, s, "email a@b.com\npassword abcdef\nlogin\n")

	assert.Contains(t, out.String(), "Logging in...")
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Welcome Home\nYour email is: a@b.com\nand \nPassword is: abcdef")
	}, time.Second, 5*time.Millisecond)

	run(t, s, "retry\nlogout\n")

	assert.Contains(t, out.String(), "Nothing to retry.")
	assert.Equal(t, domain.ScreenIdle, vm.State())
	assert.Equal(t, domain.Credentials{Email: "a@b.com", Password: "abcdef"}, vm.Credentials())
}

func TestScreen_LoginErrorAndRetry(t *testing.T) {
	s, vm, out := newTestScreen(t, domain.ScreenError, 10*time.Millisecond)

	run(t, s, "email a@b.com\npassword abcdef\nlogin\n")

	assert.Eventually(t, func() bool {
		return vm.State() == domain.ScreenError
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), "Something went wrong, please try again...")

	run(t, s, "logout\nretry\n")

	assert.Contains(t, out.String(), "You are not logged in.")
	assert.Equal(t, domain.ScreenIdle, vm.State())
	assert.Contains(t, out.String(), "== Login ==")
}

func TestScreen_Commands(t *testing.T) {
	s, vm, out := newTestScreen(t, domain.ScreenSuccess, time.Second)

	run(t, s, "password secret1\ntoggle\nhelp\nfoo\nquit\nemail ignored@after.quit\n")

	text := out.String()
	assert.Contains(t, text, "Password: *******")
	assert.Contains(t, text, "Password: secret1")
	assert.Contains(t, text, "login              submit the credentials")
	assert.Contains(t, text, `Unknown command "foo"`)
	assert.Equal(t, "", vm.Credentials().Email)
}

func TestScreen_RunStopsOnContext(t *testing.T) {
	s, _, _ := newTestScreen(t, domain.ScreenSuccess, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a reader that never returns
	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}

func TestRenderScreen(t *testing.T) {
	snap := domain.Snapshot{
		State:        domain.ScreenIdle,
		Credentials:  domain.Credentials{Email: "", Password: "ab"},
		EmailHint:    "Email is Empty",
		PasswordHint: "Enter at least 6 characters",
	}

	assert.Equal(t,
		"== Login ==\nEmail Address: (empty)\n  ! Email is Empty\nPassword: **\n  ! Enter at least 6 characters",
		renderScreen(snap, false),
	)
	assert.Contains(t, renderScreen(snap, true), "Password: ab\n")

	snap.State = domain.ScreenLoading
	assert.Equal(t, "Logging in...", renderScreen(snap, false))

	assert.Equal(t, "[snackbar] Saved", renderNotification(domain.ShowSnackbar("Saved")))
}
