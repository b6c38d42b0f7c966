// Package inbox holds the clinic's conversation and message thread state.
//
// A ConversationStore owns the conversation list, its unread counters and the
// single active selection. A ThreadStore owns the ordered messages of every
// conversation and keeps each conversation's last-message summary in step with
// the newest message. Both stores belong to one dashboard session and are not
// safe for concurrent use; the TUI event loop drives them one action at a time.
package inbox

import (
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
)

// Priority ranks how urgently a conversation needs an answer
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Label returns the Portuguese badge text
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "alta"
	case PriorityMedium:
		return "média"
	default:
		return "baixa"
	}
}

// Status is the lifecycle state of a conversation
type Status string

const (
	StatusActive   Status = "active"
	StatusWaiting  Status = "waiting"
	StatusResolved Status = "resolved"
)

// Sender identifies who authored a message
type Sender string

const (
	SenderPatient   Sender = "patient"
	SenderAttendant Sender = "attendant"
)

// Conversation is one contact's thread on one channel, as shown in the inbox list.
type Conversation struct {
	ID           string     `json:"id"`
	ContactName  string     `json:"contact_name"`
	Channel      channel.ID `json:"channel"`
	LastMessage  string     `json:"last_message"`
	LastActivity time.Time  `json:"last_activity"`
	Unread       int        `json:"unread"`
	Priority     Priority   `json:"priority"`
	Status       Status     `json:"status"`
}

// Message is immutable once created.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	Content        string     `json:"content"`
	Sender         Sender     `json:"sender"`
	Channel        channel.ID `json:"channel"`
	SentAt         time.Time  `json:"sent_at"`
}

// Clock supplies the current time for new messages
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
