package inbox

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

// ThreadStore holds the ordered messages of every conversation.
// Appending a message keeps the owning conversation's summary current.
type ThreadStore struct {
	conversations *ConversationStore
	threads       map[string][]Message
	clock         Clock
	log           *slog.Logger
}

// NewThreadStore creates a thread store bound to conversations. Seed messages
// are trimmed, grouped per conversation and sorted oldest first; each
// conversation that has messages gets its summary replaced by the newest one.
// A blank seed message fails with EmptyContent, as Send would.
func NewThreadStore(conversations *ConversationStore, clock Clock, seed []Message) (*ThreadStore, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	t := &ThreadStore{
		conversations: conversations,
		threads:       make(map[string][]Message),
		clock:         clock,
		log:           logger.WithComponent("thread"),
	}

	for _, m := range seed {
		conv, err := conversations.Get(m.ConversationID)
		if err != nil {
			return nil, err
		}
		m.Content = strings.TrimSpace(m.Content)
		if m.Content == "" {
			return nil, errors.EmptyContent(m.ConversationID)
		}
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.Channel == "" {
			m.Channel = conv.Channel
		}
		t.threads[m.ConversationID] = append(t.threads[m.ConversationID], m)
	}

	for id, msgs := range t.threads {
		sort.SliceStable(msgs, func(i, j int) bool {
			return msgs[i].SentAt.Before(msgs[j].SentAt)
		})
		last := msgs[len(msgs)-1]
		if err := conversations.touch(id, last.Content, last.SentAt); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// List returns the conversation's messages oldest first. A conversation with
// no messages yields an empty, non-nil slice.
func (t *ThreadStore) List(conversationID string) ([]Message, error) {
	if !t.conversations.Has(conversationID) {
		return nil, errors.ConversationNotFound("inbox.ListMessages", conversationID)
	}
	msgs := t.threads[conversationID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Len returns how many messages a conversation holds (0 for unknown IDs)
func (t *ThreadStore) Len(conversationID string) int {
	return len(t.threads[conversationID])
}

// Last returns the newest message of a conversation
func (t *ThreadStore) Last(conversationID string) (Message, bool) {
	msgs := t.threads[conversationID]
	if len(msgs) == 0 {
		return Message{}, false
	}
	return msgs[len(msgs)-1], true
}

// Send appends a message authored locally. Content is trimmed; blank content
// is rejected and leaves the thread untouched. The conversation's summary and
// activity time are updated but its unread counter is not.
func (t *ThreadStore) Send(conversationID, content string, sender Sender) (Message, error) {
	msg, err := t.appendMessage(conversationID, content, sender, t.clock.Now())
	if err != nil {
		return Message{}, err
	}
	if err := t.conversations.touch(conversationID, msg.Content, msg.SentAt); err != nil {
		return Message{}, err
	}
	t.log.Debug("message sent", "conversationID", conversationID, "messageID", msg.ID, "sender", sender)
	return msg, nil
}

// Receive appends an inbound patient message stamped at and records the
// activity on the conversation, which raises its unread counter by one.
func (t *ThreadStore) Receive(conversationID, content string, at time.Time) (Message, error) {
	msg, err := t.appendMessage(conversationID, content, SenderPatient, at)
	if err != nil {
		return Message{}, err
	}
	if err := t.conversations.RecordInbound(conversationID, msg.Content, msg.SentAt); err != nil {
		return Message{}, err
	}
	t.log.Debug("message received", "conversationID", conversationID, "messageID", msg.ID)
	return msg, nil
}

func (t *ThreadStore) appendMessage(conversationID, content string, sender Sender, at time.Time) (Message, error) {
	conv, err := t.conversations.Get(conversationID)
	if err != nil {
		return Message{}, err
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Message{}, errors.EmptyContent(conversationID)
	}

	// Timestamps never go backwards within a thread.
	if last, ok := t.Last(conversationID); ok && at.Before(last.SentAt) {
		at = last.SentAt
	}

	msg := Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Content:        trimmed,
		Sender:         sender,
		Channel:        conv.Channel,
		SentAt:         at,
	}
	t.threads[conversationID] = append(t.threads[conversationID], msg)
	return msg, nil
}
