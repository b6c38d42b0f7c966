package inbox

import (
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
)

// Provider supplies the initial inbox contents. The demo dataset implements it;
// a real backend would satisfy the same contract.
type Provider interface {
	Conversations() ([]Conversation, error)
	Messages() ([]Message, error)
}

// Load builds both stores from a provider. Conversation summaries are
// reconciled with the newest message of each thread.
func Load(p Provider, clock Clock) (*ConversationStore, *ThreadStore, error) {
	convs, err := p.Conversations()
	if err != nil {
		return nil, nil, err
	}
	msgs, err := p.Messages()
	if err != nil {
		return nil, nil, err
	}

	conversations, err := NewConversationStore(convs)
	if err != nil {
		return nil, nil, err
	}
	threads, err := NewThreadStore(conversations, clock, msgs)
	if err != nil {
		return nil, nil, err
	}
	return conversations, threads, nil
}

// DemoProvider serves the clinic's sample inbox with timestamps relative to
// its clock, so "2 minutes ago" stays true whenever the dashboard starts.
type DemoProvider struct {
	Clock Clock
}

func (d DemoProvider) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock.Now()
}

// Conversations returns the three sample contacts.
func (d DemoProvider) Conversations() ([]Conversation, error) {
	return []Conversation{
		{
			ID:          "1",
			ContactName: "Maria Santos",
			Channel:     channel.WhatsApp,
			Unread:      2,
			Priority:    PriorityHigh,
			Status:      StatusActive,
		},
		{
			ID:          "2",
			ContactName: "João Silva",
			Channel:     channel.Instagram,
			Unread:      1,
			Priority:    PriorityMedium,
			Status:      StatusWaiting,
		},
		{
			ID:          "3",
			ContactName: "Ana Costa",
			Channel:     channel.Email,
			Unread:      0,
			Priority:    PriorityLow,
			Status:      StatusResolved,
		},
	}, nil
}

// Messages returns the sample threads.
func (d DemoProvider) Messages() ([]Message, error) {
	now := d.now()
	ago := func(m int) time.Time { return now.Add(-time.Duration(m) * time.Minute) }

	return []Message{
		{ConversationID: "1", Sender: SenderPatient, SentAt: ago(12),
			Content: "Olá, boa tarde! Preciso remarcar minha consulta para a próxima semana."},
		{ConversationID: "1", Sender: SenderAttendant, SentAt: ago(10),
			Content: "Boa tarde, Maria! Claro, vou verificar a disponibilidade na agenda."},
		{ConversationID: "1", Sender: SenderAttendant, SentAt: ago(9),
			Content: "Temos horário disponível na terça-feira às 10h ou quinta-feira às 15h. Qual prefere?"},
		{ConversationID: "1", Sender: SenderPatient, SentAt: ago(2),
			Content: "Preciso remarcar minha consulta para terça às 10h."},

		{ConversationID: "2", Sender: SenderPatient, SentAt: ago(5),
			Content: "Quais documentos preciso levar?"},

		{ConversationID: "3", Sender: SenderAttendant, SentAt: ago(20),
			Content: "Sua consulta está confirmada para amanhã às 14h. Até lá!"},
		{ConversationID: "3", Sender: SenderPatient, SentAt: ago(15),
			Content: "Obrigada pelo atendimento!"},
	}, nil
}
