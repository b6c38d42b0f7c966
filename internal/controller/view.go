package controller

import (
	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/inbox"
)

// ChannelCount is a sidebar channel row
type ChannelCount struct {
	ID    channel.ID `json:"id"`
	Label string     `json:"label"`
	Open  int        `json:"open"`
}

// View is the state handed to the rendering surface.
type View struct {
	Role                 Role                 `json:"role"`
	Tab                  Tab                  `json:"tab"`
	Title                string               `json:"title"`
	Menu                 []MenuItem           `json:"menu"`
	Conversations        []inbox.Conversation `json:"conversations"`
	ActiveConversationID string               `json:"active_conversation_id,omitempty"`
	Thread               []inbox.Message      `json:"thread"`
	UnreadTotal          int                  `json:"unread_total"`
	OpenConversations    int                  `json:"open_conversations"`
	Channels             []ChannelCount       `json:"channels"`
}

// Snapshot captures the current state. The returned value shares nothing
// with the stores.
func (c *Controller) Snapshot() View {
	convs := c.conversations.List()
	v := View{
		Role:                 c.role,
		Tab:                  c.tab,
		Title:                c.tab.Title(),
		Menu:                 Menu(c.role),
		Conversations:        convs,
		ActiveConversationID: c.conversations.ActiveID(),
		Thread:               []inbox.Message{},
		UnreadTotal:          c.conversations.TotalUnread(),
		OpenConversations:    c.conversations.Open(),
	}

	if v.ActiveConversationID != "" {
		if msgs, err := c.threads.List(v.ActiveConversationID); err == nil {
			v.Thread = msgs
		}
	}

	open := make(map[channel.ID]int)
	for _, conv := range convs {
		if conv.Status != inbox.StatusResolved {
			open[conv.Channel]++
		}
	}
	for _, ch := range channel.List() {
		v.Channels = append(v.Channels, ChannelCount{ID: ch.ID, Label: ch.Label, Open: open[ch.ID]})
	}
	return v
}
