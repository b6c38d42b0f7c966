package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/inbox"
	"github.com/clinicadigital/omnidesk/internal/notification"
)

// feedMsg wraps an InboundMsg produced by the configured Feed, so only feed
// traffic re-arms the feed and honors the simulator toggle.
type feedMsg struct {
	in InboundMsg
}

// notifiedMsg reports the outcome of a desktop notification
type notifiedMsg struct {
	err error
}

// nextFromFeed returns the command that waits for the next feed message
func (m *Model) nextFromFeed() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	next := m.feed.Next()
	if next == nil {
		m.log.Debug("inbound feed exhausted")
		return nil
	}
	return func() tea.Msg {
		if in, ok := next().(InboundMsg); ok {
			return feedMsg{in: in}
		}
		return nil
	}
}

// handleFeedMsg delivers feed traffic while the simulator is enabled. The
// feed keeps ticking while paused; paused messages are dropped.
func (m *Model) handleFeedMsg(msg feedMsg) (tea.Model, tea.Cmd) {
	next := m.nextFromFeed()
	if !m.config.SimulatorEnabled() {
		m.log.Debug("simulator paused, dropping inbound", "contact", msg.in.Contact)
		return m, next
	}
	return m, tea.Batch(m.deliverInbound(msg.in), next)
}

// deliverInbound records a patient message, starting a conversation when
// needed, and fires the automatic answer and the desktop notification.
func (m *Model) deliverInbound(in InboundMsg) tea.Cmd {
	at := in.At
	if at.IsZero() {
		at = m.clock.Now()
	}

	var (
		msg    inbox.Message
		err    error
		opened bool
	)
	if in.ConversationID == "" {
		msg, err = m.ctrl.StartConversation(inbox.Conversation{
			ContactName: in.Contact,
			Channel:     in.Channel,
			Priority:    inbox.PriorityMedium,
			Status:      inbox.StatusWaiting,
		}, in.Content, at)
		if err == nil {
			m.log.Info("conversation started", "conversationID", msg.ConversationID, "channel", in.Channel)
		}
		opened = true
	} else {
		if conv, getErr := m.ctrl.Conversations().Get(in.ConversationID); getErr == nil && conv.Status == inbox.StatusResolved {
			opened = true
		}
		msg, err = m.ctrl.ReceiveMessage(in.ConversationID, in.Content, at)
	}
	if err != nil {
		m.refresh()
		return m.flashError(err)
	}
	id := msg.ConversationID

	if opened {
		if text, ok := m.settings.Get().AutoReply(at); ok {
			if _, err := m.ctrl.Reply(id, text); err != nil {
				m.log.Warn("auto-reply failed", "conversationID", id, "error", err)
			}
		}
	}
	m.refresh()

	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	contact := in.Contact
	if conv, err := m.ctrl.Conversations().Get(id); err == nil {
		contact = conv.ContactName
	}
	label := msg.Channel.Label()
	content := msg.Content
	return func() tea.Msg {
		return notifiedMsg{err: notification.InboundMessage(contact, label, content)}
	}
}

// handleNotified logs notification failures; they never reach the footer
func (m *Model) handleNotified(msg notifiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("notification failed", "error", msg.err)
	}
	return m, nil
}
