package notify

// Notifier delivers a fire-and-forget reminder to the user. The scheduler
// never reads anything back: a failed delivery is logged and dropped.
type Notifier interface {
	Notify(title, body string) error
}
