package inbox

import (
	"testing"
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/errors"
)

func TestNewConversationStore_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		convs []Conversation
		kind  errors.Kind
	}{
		{
			name:  "duplicate id",
			convs: []Conversation{conv("1", 0, PriorityLow, epoch), conv("1", 1, PriorityHigh, epoch)},
			kind:  errors.KindInvalid,
		},
		{
			name:  "unknown channel",
			convs: []Conversation{{ID: "1", Channel: channel.ID("telegram")}},
			kind:  errors.KindUnknownChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConversationStore(tt.convs)
			if !errors.Is(err, tt.kind) {
				t.Errorf("NewConversationStore() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestAdd_Defaults(t *testing.T) {
	s := mustStore(t)

	id, err := s.Add(Conversation{ContactName: "Novo Paciente", Channel: channel.Website, Unread: -3})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if id == "" {
		t.Fatal("Add() should assign an ID")
	}
	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Unread != 0 {
		t.Errorf("Unread = %d, want negative values clamped to 0", got.Unread)
	}
	if got.Status != StatusActive {
		t.Errorf("Status = %q, want %q", got.Status, StatusActive)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestList_Ordering(t *testing.T) {
	t1 := epoch
	t2 := epoch.Add(time.Minute)

	tests := []struct {
		name  string
		convs []Conversation
		want  []string
	}{
		{
			name:  "unread first",
			convs: []Conversation{conv("a", 0, PriorityHigh, t2), conv("b", 3, PriorityLow, t1)},
			want:  []string{"b", "a"},
		},
		{
			name:  "priority breaks unread ties",
			convs: []Conversation{conv("a", 1, PriorityLow, t2), conv("b", 1, PriorityMedium, t1), conv("c", 1, PriorityHigh, t1)},
			want:  []string{"c", "b", "a"},
		},
		{
			name:  "recent activity breaks priority ties",
			convs: []Conversation{conv("a", 0, PriorityLow, t1), conv("b", 0, PriorityLow, t2)},
			want:  []string{"b", "a"},
		},
		{
			name:  "id breaks full ties",
			convs: []Conversation{conv("z", 0, PriorityLow, t1), conv("m", 0, PriorityLow, t1)},
			want:  []string{"m", "z"},
		},
		{
			name: "empty store",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustStore(t, tt.convs...)
			if got := ids(s.List()); !equalStrings(got, tt.want) {
				t.Errorf("List() order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestList_ReturnsCopies(t *testing.T) {
	s := mustStore(t, conv("1", 2, PriorityHigh, epoch))

	list := s.List()
	list[0].Unread = 99
	list[0].ContactName = "mutated"

	got, _ := s.Get("1")
	if got.Unread != 2 || got.ContactName == "mutated" {
		t.Errorf("List() leaked internal state: %+v", got)
	}
}

func TestSelect_ResetsUnread(t *testing.T) {
	s := mustStore(t,
		conv("1", 2, PriorityHigh, epoch),
		conv("2", 0, PriorityLow, epoch),
		conv("3", 7, PriorityMedium, epoch),
	)

	for _, id := range []string{"1", "2", "3"} {
		if err := s.Select(id); err != nil {
			t.Fatalf("Select(%s) error = %v", id, err)
		}
		got, _ := s.Get(id)
		if got.Unread != 0 {
			t.Errorf("after Select(%s) unread = %d, want 0", id, got.Unread)
		}
		if s.ActiveID() != id {
			t.Errorf("ActiveID() = %q, want %q", s.ActiveID(), id)
		}
	}
}

func TestSelect_NotFoundKeepsSelection(t *testing.T) {
	s := mustStore(t, conv("1", 2, PriorityHigh, epoch))
	if err := s.Select("1"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	err := s.Select("nonexistent")
	if !errors.Is(err, errors.KindNotFound) {
		t.Fatalf("Select(nonexistent) error = %v, want not found", err)
	}
	active, ok := s.Active()
	if !ok || active.ID != "1" {
		t.Errorf("Active() = %+v, %v; want conversation 1 still selected", active, ok)
	}
}

func TestActive_NoneSelected(t *testing.T) {
	s := mustStore(t, conv("1", 0, PriorityLow, epoch))

	if _, ok := s.Active(); ok {
		t.Error("Active() should report nothing selected on a fresh store")
	}
	if s.ActiveID() != "" {
		t.Errorf("ActiveID() = %q, want empty", s.ActiveID())
	}

	empty := mustStore(t)
	if _, ok := empty.Active(); ok {
		t.Error("Active() on an empty store should report nothing selected")
	}
}

func TestRecordInbound(t *testing.T) {
	s := mustStore(t, conv("1", 0, PriorityLow, epoch))
	at := epoch.Add(5 * time.Minute)

	if err := s.RecordInbound("1", "Oi, tudo bem?", at); err != nil {
		t.Fatalf("RecordInbound() error = %v", err)
	}
	got, _ := s.Get("1")
	if got.Unread != 1 {
		t.Errorf("Unread = %d, want 1", got.Unread)
	}
	if got.LastMessage != "Oi, tudo bem?" {
		t.Errorf("LastMessage = %q", got.LastMessage)
	}
	if !got.LastActivity.Equal(at) {
		t.Errorf("LastActivity = %v, want %v", got.LastActivity, at)
	}

	if err := s.RecordInbound("missing", "x", at); !errors.Is(err, errors.KindNotFound) {
		t.Errorf("RecordInbound(missing) error = %v, want not found", err)
	}
}

func TestRecordInbound_ReopensResolved(t *testing.T) {
	c := conv("1", 0, PriorityLow, epoch)
	c.Status = StatusResolved
	s := mustStore(t, c)

	if err := s.RecordInbound("1", "Mais uma dúvida", epoch); err != nil {
		t.Fatalf("RecordInbound() error = %v", err)
	}
	got, _ := s.Get("1")
	if got.Status != StatusWaiting {
		t.Errorf("Status = %q, want %q", got.Status, StatusWaiting)
	}
}

func TestRecordInbound_Reorders(t *testing.T) {
	s := mustStore(t,
		conv("low", 0, PriorityLow, epoch),
		conv("other", 1, PriorityLow, epoch),
	)
	if got := ids(s.List()); !equalStrings(got, []string{"other", "low"}) {
		t.Fatalf("initial order = %v", got)
	}

	at := epoch.Add(time.Minute)
	s.RecordInbound("low", "a", at)
	s.RecordInbound("low", "b", at)

	if got := ids(s.List()); !equalStrings(got, []string{"low", "other"}) {
		t.Errorf("order after inbound activity = %v, want [low other]", got)
	}
}

// Selecting a conversation, then receiving inbound activity on it.
func TestSelectThenInbound(t *testing.T) {
	s := mustStore(t,
		conv("1", 2, PriorityLow, epoch),
		conv("2", 0, PriorityLow, epoch),
	)

	if err := s.Select("1"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for _, c := range s.List() {
		if c.ID == "1" && c.Unread != 0 {
			t.Errorf("conversation 1 unread = %d after select, want 0", c.Unread)
		}
	}

	if err := s.RecordInbound("1", "hi", epoch.Add(time.Minute)); err != nil {
		t.Fatalf("RecordInbound() error = %v", err)
	}
	got, _ := s.Get("1")
	if got.Unread != 1 {
		t.Errorf("unread after inbound on selected conversation = %d, want 1", got.Unread)
	}
}

func TestAggregates(t *testing.T) {
	a := conv("1", 2, PriorityHigh, epoch)
	b := conv("2", 1, PriorityMedium, epoch)
	b.Channel = channel.Instagram
	b.Status = StatusWaiting
	c := conv("3", 0, PriorityLow, epoch)
	c.Channel = channel.Email
	c.Status = StatusResolved
	s := mustStore(t, a, b, c)

	if got := s.TotalUnread(); got != 3 {
		t.Errorf("TotalUnread() = %d, want 3", got)
	}
	status := s.CountByStatus()
	if status[StatusActive] != 1 || status[StatusWaiting] != 1 || status[StatusResolved] != 1 {
		t.Errorf("CountByStatus() = %v", status)
	}
	if got := s.Open(); got != 2 {
		t.Errorf("Open() = %d, want 2", got)
	}
	byChannel := s.CountByChannel()
	if byChannel[channel.WhatsApp] != 1 || byChannel[channel.Website] != 0 {
		t.Errorf("CountByChannel() = %v", byChannel)
	}
}

func TestSetStatus(t *testing.T) {
	s := mustStore(t, conv("1", 0, PriorityLow, epoch))

	if err := s.SetStatus("1", StatusResolved); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if got, _ := s.Get("1"); got.Status != StatusResolved {
		t.Errorf("Status = %q", got.Status)
	}
	if err := s.SetStatus("x", StatusResolved); !errors.Is(err, errors.KindNotFound) {
		t.Errorf("SetStatus(x) error = %v", err)
	}
}
