package domain

// NotificationKind tells the presentation layer how to surface a notification
type NotificationKind string

const (
	NotificationToast    NotificationKind = "toast"
	NotificationSnackbar NotificationKind = "snackbar"
)

// Notification is a one-shot message for transient feedback.
// It is delivered to at most one consumer and never replayed.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// ShowToast builds a toast notification
func ShowToast(message string) Notification {
	return Notification{Kind: NotificationToast, Message: message}
}

// ShowSnackbar builds a snackbar notification
func ShowSnackbar(message string) Notification {
	return Notification{Kind: NotificationSnackbar, Message: message}
}
