package ui

import (
	"strings"
	"testing"

	"github.com/clinicadigital/omnidesk/internal/inbox"
)

func newTestThread(t *testing.T) (*Thread, inbox.Conversation) {
	t.Helper()
	convs, threads := demoConversations(t)
	maria := convs[0]
	msgs, err := threads.List(maria.ID)
	if err != nil {
		t.Fatalf("threads.List() error = %v", err)
	}

	th := NewThread()
	th.SetSize(70, 30)
	th.SetConversation(&maria, msgs)
	return th, maria
}

func TestThread_EmptyState(t *testing.T) {
	th := NewThread()
	th.SetSize(60, 20)

	if th.HasConversation() {
		t.Error("new thread should have no conversation")
	}
	if view := stripANSI(th.View()); !strings.Contains(view, "Selecione uma conversa para começar") {
		t.Errorf("empty view = %q", view)
	}
}

func TestThread_View(t *testing.T) {
	th, _ := newTestThread(t)
	view := stripANSI(th.View())

	for _, want := range []string{"Maria Santos", "WhatsApp", "Paciente · 14:32", "Você"} {
		if !strings.Contains(view, want) {
			t.Errorf("thread view missing %q", want)
		}
	}
}

func TestThread_IgnoresKeysWhenBlurred(t *testing.T) {
	th, _ := newTestThread(t)

	th.Update(keyPress("a"))
	if th.InputValue() != "" {
		t.Errorf("blurred thread accepted input %q", th.InputValue())
	}
}

func TestThread_Typing(t *testing.T) {
	th, _ := newTestThread(t)
	th.SetFocused(true)

	for _, r := range "oi" {
		th.Update(keyPress(string(r)))
	}
	if th.InputValue() != "oi" {
		t.Errorf("InputValue() = %q, want %q", th.InputValue(), "oi")
	}
}

func TestThread_GraphemeLimit(t *testing.T) {
	th, _ := newTestThread(t)
	th.SetFocused(true)

	full := strings.Repeat("é", ComposeCharLimit)
	th.SetInputValue(full)
	th.Update(keyPress("x"))

	if th.InputValue() != full {
		t.Errorf("input grew past %d graphemes to %d bytes", ComposeCharLimit, len(th.InputValue()))
	}
}

func TestThread_InputResetOnConversationChange(t *testing.T) {
	th, maria := newTestThread(t)
	th.SetInputValue("rascunho")

	// Same conversation, new messages: draft survives
	th.SetConversation(&maria, th.Messages())
	if th.InputValue() != "rascunho" {
		t.Errorf("draft lost on refresh: %q", th.InputValue())
	}

	other := inbox.Conversation{ID: "2", ContactName: "João Silva"}
	th.SetConversation(&other, nil)
	if th.InputValue() != "" {
		t.Errorf("draft should reset when the conversation changes, got %q", th.InputValue())
	}
}

func TestRenderMessage_Alignment(t *testing.T) {
	patient := inbox.Message{Content: "oi", Sender: inbox.SenderPatient, SentAt: testNow}
	attendant := inbox.Message{Content: "olá", Sender: inbox.SenderAttendant, SentAt: testNow}

	p := strings.Split(stripANSI(renderMessage(patient, 40)), "\n")
	a := strings.Split(stripANSI(renderMessage(attendant, 40)), "\n")

	if strings.HasPrefix(p[0], " ") {
		t.Errorf("patient bubble should be left aligned: %q", p[0])
	}
	if !strings.HasPrefix(a[0], " ") {
		t.Errorf("attendant bubble should be right aligned: %q", a[0])
	}
	if !strings.Contains(a[len(a)-1], "Você · 14:34") {
		t.Errorf("attendant meta line = %q", a[len(a)-1])
	}
}
