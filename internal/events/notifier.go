package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notifier adapts the dispatcher to the directory's notification boundary:
// each success or error notice becomes one directory_notice event.
type Notifier struct {
	dispatcher Dispatcher
	category   string
}

// NewNotifier builds a notifier bound to one staff category.
func NewNotifier(dispatcher Dispatcher, category string) *Notifier {
	return &Notifier{dispatcher: dispatcher, category: category}
}

// Success publishes a success notice.
func (n *Notifier) Success(message string) {
	n.publish(NoticeLevelSuccess, message)
}

// Error publishes an error notice.
func (n *Notifier) Error(message string) {
	n.publish(NoticeLevelError, message)
}

func (n *Notifier) publish(level NoticeLevel, message string) {
	if n.dispatcher == nil {
		return
	}
	_ = n.dispatcher.Publish(context.Background(), Event{
		ID:        uuid.NewString(),
		Type:      EventDirectoryNotice,
		Category:  n.category,
		Timestamp: time.Now(),
		Payload:   DirectoryNoticePayload{Level: level, Message: message},
	})
}
