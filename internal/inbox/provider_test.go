package inbox

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_DemoProvider(t *testing.T) {
	clock := newFakeClock()
	convs, threads, err := Load(DemoProvider{Clock: clock}, clock)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if convs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", convs.Len())
	}
	if got := ids(convs.List()); !equalStrings(got, []string{"1", "2", "3"}) {
		t.Errorf("List() order = %v, want [1 2 3]", got)
	}
	if got := convs.TotalUnread(); got != 3 {
		t.Errorf("TotalUnread() = %d, want 3", got)
	}

	maria, _ := convs.Get("1")
	if maria.ContactName != "Maria Santos" {
		t.Errorf("ContactName = %q", maria.ContactName)
	}
	if maria.LastMessage != "Preciso remarcar minha consulta para terça às 10h." {
		t.Errorf("LastMessage = %q", maria.LastMessage)
	}
	if want := clock.Now().Add(-2 * time.Minute); !maria.LastActivity.Equal(want) {
		t.Errorf("LastActivity = %v, want %v", maria.LastActivity, want)
	}
	if threads.Len("1") != 4 {
		t.Errorf("thread 1 length = %d, want 4", threads.Len("1"))
	}

	for _, c := range convs.List() {
		last, ok := threads.Last(c.ID)
		if !ok {
			t.Errorf("conversation %s has no messages", c.ID)
			continue
		}
		if c.LastMessage != last.Content {
			t.Errorf("conversation %s summary %q != newest message %q", c.ID, c.LastMessage, last.Content)
		}
	}
}

type failingProvider struct{}

func (failingProvider) Conversations() ([]Conversation, error) { return nil, errors.New("backend down") }
func (failingProvider) Messages() ([]Message, error)           { return nil, nil }

func TestLoad_ProviderError(t *testing.T) {
	if _, _, err := Load(failingProvider{}, nil); err == nil {
		t.Error("Load() should propagate provider errors")
	}
}
