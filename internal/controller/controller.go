// Package controller binds dashboard actions to the inbox stores.
//
// The Controller is a small state machine over the session role, the active
// tab and the active conversation. Every rejected action leaves that state
// untouched and returns a typed error from internal/errors, which the
// rendering surface turns into a flash message.
package controller

import (
	"log/slog"
	"strings"
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/inbox"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

// Recorder receives activity events. metrics.Recorder satisfies it.
type Recorder interface {
	MessageSent(ch channel.ID)
	MessageReceived(ch channel.ID)
	ConversationSelected()
	Rejected(kind errors.Kind)
	SetUnread(n int)
}

type nopRecorder struct{}

func (nopRecorder) MessageSent(channel.ID)     {}
func (nopRecorder) MessageReceived(channel.ID) {}
func (nopRecorder) ConversationSelected()      {}
func (nopRecorder) Rejected(errors.Kind)       {}
func (nopRecorder) SetUnread(int)              {}

// Controller owns the session's navigation state and drives the stores.
type Controller struct {
	role Role
	tab  Tab

	conversations *inbox.ConversationStore
	threads       *inbox.ThreadStore
	recorder      Recorder
	log           *slog.Logger
}

// New creates a controller with no role chosen.
func New(conversations *inbox.ConversationStore, threads *inbox.ThreadStore) *Controller {
	return &Controller{
		conversations: conversations,
		threads:       threads,
		recorder:      nopRecorder{},
		log:           logger.WithComponent("controller"),
	}
}

// SetRecorder routes activity events to r. A nil r disables recording.
func (c *Controller) SetRecorder(r Recorder) {
	if r == nil {
		r = nopRecorder{}
	}
	c.recorder = r
	r.SetUnread(c.conversations.TotalUnread())
}

// Role returns the session role, RoleNone before the selector.
func (c *Controller) Role() Role { return c.role }

// Tab returns the active tab
func (c *Controller) Tab() Tab { return c.tab }

// ActiveConversationID returns the selected conversation or ""
func (c *Controller) ActiveConversationID() string { return c.conversations.ActiveID() }

// Conversations exposes the conversation store for read-only rendering
func (c *Controller) Conversations() *inbox.ConversationStore { return c.conversations }

// Threads exposes the thread store for read-only rendering
func (c *Controller) Threads() *inbox.ThreadStore { return c.threads }

// ChooseRole fixes the session role and opens its landing tab. Once a role is
// set further calls are ignored.
func (c *Controller) ChooseRole(r Role) error {
	if r != RoleAttendant && r != RoleManager {
		return c.reject(errors.InvalidRole(string(r)))
	}
	if c.role != RoleNone {
		c.log.Debug("role already chosen, ignoring", "role", c.role, "requested", r)
		return nil
	}
	c.role = r
	c.tab = DefaultTab(r)
	c.log.Info("role chosen", "role", r, "tab", c.tab)
	return nil
}

// ChangeTab switches to tab if the role permits it.
func (c *Controller) ChangeTab(tab Tab) error {
	if !Allowed(c.role, tab) {
		return c.reject(errors.ForbiddenTab(string(c.role), string(tab)))
	}
	if tab != c.tab {
		c.log.Debug("tab changed", "from", c.tab, "to", tab)
	}
	c.tab = tab
	return nil
}

// SelectConversation marks id as the active conversation. It only applies
// while the inbox tab is open.
func (c *Controller) SelectConversation(id string) error {
	if c.tab != TabInbox {
		return c.reject(errors.NotOnInbox(string(c.tab)))
	}
	if err := c.conversations.Select(id); err != nil {
		return c.reject(err)
	}
	c.recorder.ConversationSelected()
	c.recorder.SetUnread(c.conversations.TotalUnread())
	return nil
}

// SendMessage posts content as the attendant into the active conversation.
func (c *Controller) SendMessage(content string) (inbox.Message, error) {
	id := c.conversations.ActiveID()
	if id == "" {
		return inbox.Message{}, c.reject(errors.NoActiveConversation())
	}
	msg, err := c.threads.Send(id, content, inbox.SenderAttendant)
	if err != nil {
		return inbox.Message{}, c.reject(err)
	}
	c.recorder.MessageSent(msg.Channel)
	return msg, nil
}

// Reply posts an automatic attendant answer into conversationID without
// touching the selection. Used for auto-responses to inbound traffic.
func (c *Controller) Reply(conversationID, content string) (inbox.Message, error) {
	msg, err := c.threads.Send(conversationID, content, inbox.SenderAttendant)
	if err != nil {
		return inbox.Message{}, c.reject(err)
	}
	c.recorder.MessageSent(msg.Channel)
	return msg, nil
}

// ReceiveMessage records an inbound patient message. Inbound traffic is not
// tied to the active tab.
func (c *Controller) ReceiveMessage(conversationID, content string, at time.Time) (inbox.Message, error) {
	msg, err := c.threads.Receive(conversationID, content, at)
	if err != nil {
		return inbox.Message{}, c.reject(err)
	}
	c.recorder.MessageReceived(msg.Channel)
	c.recorder.SetUnread(c.conversations.TotalUnread())
	return msg, nil
}

// AddConversation registers a new contact arriving from a channel.
func (c *Controller) AddConversation(conv inbox.Conversation) (string, error) {
	id, err := c.conversations.Add(conv)
	if err != nil {
		return "", c.reject(err)
	}
	c.recorder.SetUnread(c.conversations.TotalUnread())
	return id, nil
}

// ResolveConversation marks the active conversation resolved. A later inbound
// message reopens it.
func (c *Controller) ResolveConversation() (inbox.Conversation, error) {
	id := c.conversations.ActiveID()
	if id == "" {
		return inbox.Conversation{}, c.reject(errors.NoActiveConversation())
	}
	if err := c.conversations.SetStatus(id, inbox.StatusResolved); err != nil {
		return inbox.Conversation{}, c.reject(err)
	}
	c.log.Info("conversation resolved", "conversationID", id)
	return c.conversations.Get(id)
}

// StartConversation registers a new contact together with its first inbound
// message. Blank content is rejected before the conversation is created, so a
// failed start leaves the stores unchanged.
func (c *Controller) StartConversation(conv inbox.Conversation, content string, at time.Time) (inbox.Message, error) {
	if strings.TrimSpace(content) == "" {
		return inbox.Message{}, c.reject(errors.EmptyContent(conv.ContactName))
	}
	id, err := c.AddConversation(conv)
	if err != nil {
		return inbox.Message{}, err
	}
	return c.ReceiveMessage(id, content, at)
}

func (c *Controller) reject(err error) error {
	kind := errors.GetKind(err)
	c.recorder.Rejected(kind)
	c.log.Warn("action rejected", "kind", kind.String(), "error", err)
	return err
}
