package demo

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/app"
	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

// DefaultInterval is the pause between simulated messages
const DefaultInterval = 20 * time.Second

// DefaultScript is the patient traffic the live dashboard simulates. Entries
// with a ConversationID follow up on the sample inbox; the rest are new
// contacts.
var DefaultScript = []app.InboundMsg{
	{Contact: "Carlos Mendes", Channel: channel.WhatsApp, Content: "Boa tarde! Vocês atendem pelo convênio Unimed?"},
	{ConversationID: "2", Content: "Preciso levar os exames anteriores também?"},
	{Contact: "Fernanda Lima", Channel: channel.Website, Content: "Gostaria de agendar uma consulta com dermatologista."},
	{ConversationID: "1", Content: "Pode ser terça às 10h então, obrigada!"},
	{ConversationID: "3", Content: "Esqueci de perguntar: preciso estar em jejum?"},
	{Contact: "Roberto Dias", Channel: channel.Email, Content: "Segue em anexo o pedido médico para os exames de sangue."},
	{Contact: "Juliana Rocha", Channel: channel.Instagram, Content: "Oi! Qual o valor da consulta particular?"},
}

// Simulator is an app.Feed that replays a script of inbound messages, one per
// interval. The script starts over once exhausted when Loop is set.
type Simulator struct {
	Loop bool

	script   []app.InboundMsg
	interval time.Duration
	pos      int
	log      *slog.Logger
}

// NewSimulator creates a looping simulator. A non-positive interval selects
// DefaultInterval and an empty script selects DefaultScript.
func NewSimulator(interval time.Duration, script []app.InboundMsg) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if len(script) == 0 {
		script = DefaultScript
	}
	return &Simulator{
		Loop:     true,
		script:   script,
		interval: interval,
		log:      logger.WithComponent("simulator"),
	}
}

// Interval returns the pause between messages
func (s *Simulator) Interval() time.Duration {
	return s.interval
}

// Next returns a command that delivers the following scripted message after
// the interval, or nil when a non-looping script is exhausted. The timestamp
// is left empty so the model stamps it with its own clock.
func (s *Simulator) Next() tea.Cmd {
	if s.pos >= len(s.script) {
		if !s.Loop {
			return nil
		}
		s.pos = 0
	}
	msg := s.script[s.pos]
	s.pos++
	s.log.Debug("scheduling inbound", "contact", msg.Contact, "conversationID", msg.ConversationID, "in", s.interval)
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return msg
	})
}
