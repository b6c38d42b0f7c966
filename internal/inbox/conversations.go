package inbox

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

// ConversationStore holds the inbox conversations and the active selection.
type ConversationStore struct {
	byID     map[string]*Conversation
	order    []string // insertion order, used only for stable iteration
	selected string
	log      *slog.Logger
}

// NewConversationStore creates a store seeded with convs.
// It fails on duplicate IDs or unknown channels; negative unread counts are clamped to zero.
func NewConversationStore(convs []Conversation) (*ConversationStore, error) {
	s := &ConversationStore{
		byID: make(map[string]*Conversation, len(convs)),
		log:  logger.WithComponent("inbox"),
	}
	for _, c := range convs {
		if _, err := s.Add(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add registers a new conversation. An empty ID is replaced with a UUID.
// The stored ID is returned.
func (s *ConversationStore) Add(c Conversation) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := s.byID[c.ID]; exists {
		return "", errors.DuplicateConversation(c.ID)
	}
	if _, err := channel.Lookup(c.Channel); err != nil {
		return "", err
	}
	if c.Unread < 0 {
		c.Unread = 0
	}
	if c.Status == "" {
		c.Status = StatusActive
	}

	conv := c
	s.byID[c.ID] = &conv
	s.order = append(s.order, c.ID)
	s.log.Debug("conversation added", "conversationID", c.ID, "channel", c.Channel, "unread", c.Unread)
	return c.ID, nil
}

// Len returns the number of conversations
func (s *ConversationStore) Len() int {
	return len(s.order)
}

// List returns all conversations ordered by unread count, then priority,
// then most recent activity. Ties fall back to ID so the order is stable.
func (s *ConversationStore) List() []Conversation {
	out := make([]Conversation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b Conversation) bool {
	if a.Unread != b.Unread {
		return a.Unread > b.Unread
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.LastActivity.Equal(b.LastActivity) {
		return a.LastActivity.After(b.LastActivity)
	}
	return a.ID < b.ID
}

// Get returns a copy of the conversation with the given ID
func (s *ConversationStore) Get(id string) (Conversation, error) {
	c, ok := s.byID[id]
	if !ok {
		return Conversation{}, errors.ConversationNotFound("inbox.Get", id)
	}
	return *c, nil
}

// Has reports whether a conversation exists
func (s *ConversationStore) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Select makes id the active conversation and clears its unread counter.
// On failure the previous selection is kept.
func (s *ConversationStore) Select(id string) error {
	c, ok := s.byID[id]
	if !ok {
		s.log.Debug("select rejected", "conversationID", id)
		return errors.ConversationNotFound("inbox.Select", id)
	}
	prev := s.selected
	s.selected = id
	c.Unread = 0
	s.log.Debug("conversation selected", "conversationID", id, "previous", prev)
	return nil
}

// Active returns the selected conversation, or false when nothing is selected.
func (s *ConversationStore) Active() (Conversation, bool) {
	if s.selected == "" {
		return Conversation{}, false
	}
	c, ok := s.byID[s.selected]
	if !ok {
		return Conversation{}, false
	}
	return *c, true
}

// ActiveID returns the selected conversation ID or ""
func (s *ConversationStore) ActiveID() string {
	return s.selected
}

// RecordInbound notes a new patient message: unread goes up by one and the
// summary and activity time are replaced.
func (s *ConversationStore) RecordInbound(id, summary string, at time.Time) error {
	c, ok := s.byID[id]
	if !ok {
		return errors.ConversationNotFound("inbox.RecordInbound", id)
	}
	c.Unread++
	c.LastMessage = summary
	c.LastActivity = at
	if c.Status == StatusResolved {
		c.Status = StatusWaiting
	}
	s.log.Debug("inbound activity", "conversationID", id, "unread", c.Unread)
	return nil
}

// touch updates the summary for a locally authored message. Unread is untouched.
func (s *ConversationStore) touch(id, summary string, at time.Time) error {
	c, ok := s.byID[id]
	if !ok {
		return errors.ConversationNotFound("inbox.touch", id)
	}
	c.LastMessage = summary
	c.LastActivity = at
	return nil
}

// SetStatus changes a conversation's lifecycle state
func (s *ConversationStore) SetStatus(id string, status Status) error {
	c, ok := s.byID[id]
	if !ok {
		return errors.ConversationNotFound("inbox.SetStatus", id)
	}
	c.Status = status
	return nil
}

// TotalUnread sums unread counters across all conversations
func (s *ConversationStore) TotalUnread() int {
	total := 0
	for _, c := range s.byID {
		total += c.Unread
	}
	return total
}

// CountByStatus returns how many conversations are in each status
func (s *ConversationStore) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, c := range s.byID {
		counts[c.Status]++
	}
	return counts
}

// Open returns the number of conversations that are not resolved
func (s *ConversationStore) Open() int {
	counts := s.CountByStatus()
	return counts[StatusActive] + counts[StatusWaiting]
}

// CountByChannel returns the number of conversations per channel
func (s *ConversationStore) CountByChannel() map[channel.ID]int {
	counts := make(map[channel.ID]int, len(channel.IDs()))
	for _, c := range s.byID {
		counts[c.Channel]++
	}
	return counts
}
