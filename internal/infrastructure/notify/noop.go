package notify

import "go.uber.org/zap"

// NoopNotifier logs reminders instead of delivering them. Used when no SMTP
// configuration is present.
type NoopNotifier struct {
	log *zap.Logger
}

// NewNoopNotifier creates a log-only notifier.
func NewNoopNotifier(log *zap.Logger) *NoopNotifier {
	return &NoopNotifier{log: log}
}

func (n *NoopNotifier) Notify(title, body string) error {
	n.log.Info("reminder", zap.String("title", title), zap.String("body", body))
	return nil
}
