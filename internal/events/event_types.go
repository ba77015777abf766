package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDirectoryNotice   EventType = "directory_notice"
	EventPhotoAdded        EventType = "photo_added"
	EventPhotoDeleted      EventType = "photo_deleted"
	EventAccountRegistered EventType = "account_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Category  string      `json:"category,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NoticeLevel distinguishes success from error notices.
type NoticeLevel string

const (
	NoticeLevelSuccess NoticeLevel = "success"
	NoticeLevelError   NoticeLevel = "error"
)

// DirectoryNoticePayload carries one user-facing transient notification
// produced by a directory operation outcome.
type DirectoryNoticePayload struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// PhotoPayload payload for gallery events.
type PhotoPayload struct {
	PhotoID string `json:"photo_id"`
	Title   string `json:"title"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Editor    bool   `json:"editor"`
}
