package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/clinicadigital/omnidesk/internal/inbox"
	"github.com/clinicadigital/omnidesk/internal/keys"
)

// threadHeaderHeight is the contact line plus its rule
const threadHeaderHeight = 2

// Thread is the right column of the inbox: the active conversation's
// messages in a scrolling viewport and the compose box below.
type Thread struct {
	width   int
	height  int
	focused bool

	conversation *inbox.Conversation
	messages     []inbox.Message

	viewport viewport.Model
	input    textarea.Model
}

// NewThread creates an empty thread panel
func NewThread() *Thread {
	ti := textarea.New()
	ti.Placeholder = "Digite sua mensagem..."
	ti.CharLimit = 0 // enforced in graphemes by Update
	ti.SetHeight(ComposeHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.KeyMap.InsertNewline.SetKeys(keys.AltEnter)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Thread{viewport: vp, input: ti}
}

// SetSize sets the panel dimensions
func (t *Thread) SetSize(width, height int) {
	t.width = width
	t.height = height

	panelHeight := height - ComposeTotalHeight
	t.viewport.SetWidth(max(width-BorderSize, 1))
	t.viewport.SetHeight(max(panelHeight-BorderSize-threadHeaderHeight, 1))
	t.input.SetWidth(max(width-BorderSize-2, 1))
	t.render()
}

// SetFocused moves keyboard focus into or out of the compose box
func (t *Thread) SetFocused(focused bool) tea.Cmd {
	t.focused = focused
	if focused {
		return t.input.Focus()
	}
	t.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (t *Thread) IsFocused() bool {
	return t.focused
}

// HasConversation reports whether a conversation is open
func (t *Thread) HasConversation() bool {
	return t.conversation != nil
}

// SetConversation shows conv and its messages, scrolled to the newest.
// A nil conv shows the empty state.
func (t *Thread) SetConversation(conv *inbox.Conversation, messages []inbox.Message) {
	changed := conv == nil || t.conversation == nil || conv.ID != t.conversation.ID
	t.conversation = conv
	t.messages = messages
	if changed {
		t.input.Reset()
	}
	t.render()
}

// Messages returns the messages currently shown
func (t *Thread) Messages() []inbox.Message {
	return t.messages
}

// InputValue returns the compose box text
func (t *Thread) InputValue() string {
	return t.input.Value()
}

// SetInputValue replaces the compose box text
func (t *Thread) SetInputValue(s string) {
	t.input.SetValue(s)
}

// ClearInput empties the compose box
func (t *Thread) ClearInput() {
	t.input.Reset()
}

// render rebuilds the viewport content from the messages
func (t *Thread) render() {
	width := t.viewport.Width()
	if t.conversation == nil || width <= 0 {
		t.viewport.SetContent("")
		return
	}

	var sb strings.Builder
	for i, msg := range t.messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderMessage(msg, width))
	}
	t.viewport.SetContent(sb.String())
	t.viewport.GotoBottom()
}

// renderMessage draws one bubble, patients on the left and the clinic on
// the right, with the sender and time underneath.
func renderMessage(msg inbox.Message, width int) string {
	maxBubble := max(int(float64(width)*BubbleMaxRatio), 12)
	textWidth := lipgloss.Width(msg.Content) + 4 // border + padding
	bubbleWidth := min(textWidth, maxBubble)

	style := PatientBubbleStyle
	who := "Paciente"
	align := lipgloss.Left
	if msg.Sender == inbox.SenderAttendant {
		style = AttendantBubbleStyle
		who = "Você"
		align = lipgloss.Right
	}

	bubble := style.Width(bubbleWidth).Render(msg.Content)
	meta := MessageTimeStyle.Render(who + " · " + ClockTime(msg.SentAt))
	block := lipgloss.JoinVertical(align, bubble, meta)
	return lipgloss.NewStyle().Width(width).Align(align).Render(block)
}

// Update routes keys to the compose box and scroll keys to the viewport
func (t *Thread) Update(msg tea.Msg) (*Thread, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if !t.focused || t.conversation == nil {
			return t, nil
		}
		switch keyMsg.String() {
		case keys.PgUp, keys.PgDown, "ctrl+up", "ctrl+down":
			var cmd tea.Cmd
			t.viewport, cmd = t.viewport.Update(msg)
			return t, cmd
		}

		prev := t.input.Value()
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		if uniseg.GraphemeClusterCount(t.input.Value()) > ComposeCharLimit {
			t.input.SetValue(prev)
		}
		return t, cmd
	}

	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

func (t *Thread) headerView(inner int) string {
	c := t.conversation
	name := ConversationNameStyle.Render(c.ContactName)
	meta := ConversationPreviewStyle.Render(" · " + channelIcon(c.Channel) + " " + c.Channel.Label() + " · " + string(c.Status))
	line := truncate(" "+name+meta, inner)
	rule := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", inner))
	return line + "\n" + rule
}

// View renders the thread and compose box
func (t *Thread) View() string {
	panelStyle := PanelStyle
	if t.focused {
		panelStyle = PanelFocusedStyle
	}
	inner := max(t.width-BorderSize, 1)

	if t.conversation == nil {
		empty := PlaceholderStyle.
			Width(inner).
			Height(max(t.height-BorderSize, 1)).
			AlignVertical(lipgloss.Center).
			Render("Selecione uma conversa para começar")
		return panelStyle.Width(t.width).Height(t.height).Render(empty)
	}

	panelHeight := t.height - ComposeTotalHeight
	history := panelStyle.
		Width(t.width).
		Height(panelHeight).
		Render(t.headerView(inner) + "\n" + t.viewport.View())

	inputStyle := ComposeStyle
	if t.focused {
		inputStyle = ComposeFocusedStyle
	}
	compose := inputStyle.Width(t.width).Render(t.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, history, compose)
}
