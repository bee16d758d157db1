// Package notify is the transient user-notification contract consumed by
// the cart and checkout layers. The renderer supplies the real channel;
// LogNotifier is the default sink.
package notify

import "log"

type Notifier interface {
	Success(msg string)
	Error(msg string)
	Loading(msg string)
}

type LogNotifier struct{}

func (LogNotifier) Success(msg string) {
	log.Printf("notify success: %s", msg)
}

func (LogNotifier) Error(msg string) {
	log.Printf("notify error: %s", msg)
}

func (LogNotifier) Loading(msg string) {
	log.Printf("notify loading: %s", msg)
}
