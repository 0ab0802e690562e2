package testutil

// Notification is one captured notification.
type Notification struct {
	Level   string
	Title   string
	Message string
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	Notifications []Notification
}

func (r *RecordingNotifier) Info(title, message string) {
	r.Notifications = append(r.Notifications, Notification{Level: "info", Title: title, Message: message})
}

func (r *RecordingNotifier) Error(title, message string) {
	r.Notifications = append(r.Notifications, Notification{Level: "error", Title: title, Message: message})
}

// Errors returns the captured error notifications.
func (r *RecordingNotifier) Errors() []Notification {
	var out []Notification
	for _, n := range r.Notifications {
		if n.Level == "error" {
			out = append(out, n)
		}
	}
	return out
}
