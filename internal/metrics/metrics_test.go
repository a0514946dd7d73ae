package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"loginscreen/internal/domain"
)

func TestObserveTransition(t *testing.T) {
	before := testutil.ToFloat64(ScreenTransitionsTotal.WithLabelValues("loading"))

	ObserveTransition(domain.ScreenLoading)
	ObserveTransition(domain.ScreenLoading)

	after := testutil.ToFloat64(ScreenTransitionsTotal.WithLabelValues("loading"))
	assert.Equal(t, before+2, after)
}

func TestObserveNotification(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.NotificationKind
		delivered bool
		label     string
	}{
		{name: "delivered toast", kind: domain.NotificationToast, delivered: true, label: "true"},
		{name: "dropped snackbar", kind: domain.NotificationSnackbar, delivered: false, label: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NotificationsTotal.WithLabelValues(string(tt.kind), tt.label)
			before := testutil.ToFloat64(counter)

			ObserveNotification(tt.kind, tt.delivered)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}
