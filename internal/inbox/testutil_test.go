package inbox

import (
	"os"
	"testing"
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

var epoch = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: epoch} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func conv(id string, unread int, p Priority, at time.Time) Conversation {
	return Conversation{
		ID:           id,
		ContactName:  "Contact " + id,
		Channel:      channel.WhatsApp,
		Unread:       unread,
		Priority:     p,
		LastActivity: at,
	}
}

func mustStore(t *testing.T, convs ...Conversation) *ConversationStore {
	t.Helper()
	s, err := NewConversationStore(convs)
	if err != nil {
		t.Fatalf("NewConversationStore() error = %v", err)
	}
	return s
}

func ids(convs []Conversation) []string {
	out := make([]string, len(convs))
	for i, c := range convs {
		out[i] = c.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
