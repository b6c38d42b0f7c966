package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/clinicadigital/omnidesk/internal/inbox"
	"github.com/clinicadigital/omnidesk/internal/keys"
)

// SearchCharLimit caps the inbox search query
const SearchCharLimit = 40

// conversationSource adapts a conversation slice for fuzzy matching on the
// contact name and channel label.
type conversationSource []inbox.Conversation

func (s conversationSource) String(i int) string {
	return s[i].ContactName + " " + s[i].Channel.Label()
}

func (s conversationSource) Len() int { return len(s) }

// ConversationList is the left column of the inbox. The cursor is local to
// the list; the active conversation only changes when the app selects the
// cursor row through the controller.
type ConversationList struct {
	width   int
	height  int
	focused bool

	conversations []inbox.Conversation
	filtered      []int // indexes into conversations, nil when no filter applies
	activeID      string
	waiting       int
	cursor        int
	offset        int

	search    textinput.Model
	searching bool

	now func() time.Time
}

// NewConversationList creates an empty, focused list
func NewConversationList() *ConversationList {
	ti := textinput.New()
	ti.Placeholder = "buscar contato..."
	ti.CharLimit = SearchCharLimit
	ti.Prompt = "/ "

	return &ConversationList{
		focused: true,
		search:  ti,
		now:     time.Now,
	}
}

// SetSize sets the panel dimensions
func (l *ConversationList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.search.SetWidth(max(width-BorderSize-4, 1))
}

// SetFocused sets the focus state
func (l *ConversationList) SetFocused(focused bool) {
	l.focused = focused
}

// IsFocused returns the focus state
func (l *ConversationList) IsFocused() bool {
	return l.focused
}

// SetClock overrides the time source for relative timestamps
func (l *ConversationList) SetClock(now func() time.Time) {
	l.now = now
}

// SetConversations replaces the rows. The cursor stays on the same
// conversation when it is still visible.
func (l *ConversationList) SetConversations(convs []inbox.Conversation, activeID string, waiting int) {
	var cursorID string
	if c, ok := l.Cursor(); ok {
		cursorID = c.ID
	}

	l.conversations = convs
	l.activeID = activeID
	l.waiting = waiting
	l.applyFilter(l.Query())

	if cursorID == "" {
		cursorID = activeID
	}
	l.moveCursorTo(cursorID)
}

func (l *ConversationList) moveCursorTo(id string) {
	for i, c := range l.Visible() {
		if c.ID == id {
			l.cursor = i
			return
		}
	}
	l.clampCursor()
}

func (l *ConversationList) clampCursor() {
	n := len(l.Visible())
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Visible returns the rows currently shown, in display order
func (l *ConversationList) Visible() []inbox.Conversation {
	if l.filtered == nil {
		return l.conversations
	}
	out := make([]inbox.Conversation, len(l.filtered))
	for i, idx := range l.filtered {
		out[i] = l.conversations[idx]
	}
	return out
}

// Cursor returns the conversation under the cursor
func (l *ConversationList) Cursor() (inbox.Conversation, bool) {
	rows := l.Visible()
	if l.cursor < 0 || l.cursor >= len(rows) {
		return inbox.Conversation{}, false
	}
	return rows[l.cursor], true
}

// MoveUp moves the cursor one row up
func (l *ConversationList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor one row down
func (l *ConversationList) MoveDown() {
	if l.cursor < len(l.Visible())-1 {
		l.cursor++
	}
}

// EnterSearch starts filtering by contact name
func (l *ConversationList) EnterSearch() tea.Cmd {
	l.searching = true
	l.search.SetValue("")
	l.applyFilter("")
	return l.search.Focus()
}

// ExitSearch stops filtering and clears the query
func (l *ConversationList) ExitSearch() {
	l.searching = false
	l.search.Blur()
	l.search.SetValue("")
	l.applyFilter("")
	l.clampCursor()
}

// IsSearching returns whether the search input has focus
func (l *ConversationList) IsSearching() bool {
	return l.searching
}

// Query returns the current search query
func (l *ConversationList) Query() string {
	return l.search.Value()
}

// applyFilter ranks conversations against query, best match first
func (l *ConversationList) applyFilter(query string) {
	if strings.TrimSpace(query) == "" {
		l.filtered = nil
		return
	}
	matches := fuzzy.FindFrom(query, conversationSource(l.conversations))
	l.filtered = make([]int, len(matches))
	for i, m := range matches {
		l.filtered[i] = m.Index
	}
	l.cursor = 0
	l.offset = 0
}

// Update handles key presses while the list is focused
func (l *ConversationList) Update(msg tea.Msg) (*ConversationList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused {
		return l, nil
	}

	if l.searching {
		switch keyMsg.String() {
		case keys.Escape:
			l.ExitSearch()
		case keys.Enter:
			// Keep the filter, hand the keys back to the list
			l.searching = false
			l.search.Blur()
		case keys.Up:
			l.MoveUp()
		case keys.Down:
			l.MoveDown()
		default:
			var cmd tea.Cmd
			l.search, cmd = l.search.Update(msg)
			l.applyFilter(l.search.Value())
			return l, cmd
		}
		return l, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		l.MoveUp()
	case keys.Down, "j":
		l.MoveDown()
	case keys.Home:
		l.cursor = 0
	case keys.End:
		l.cursor = max(len(l.Visible())-1, 0)
	}
	return l, nil
}

// headerLines renders the title and the search line
func (l *ConversationList) headerLines(inner int) []string {
	title := PanelTitleStyle.Render("Conversas Ativas")
	sub := ConversationPreviewStyle.Render(fmt.Sprintf(" %d aguardando resposta", l.waiting))
	lines := []string{title, sub}

	switch {
	case l.searching:
		lines = append(lines, " "+l.search.View())
	case l.Query() != "":
		lines = append(lines, SearchPromptStyle.Render(" / "+truncate(l.Query(), inner-4)))
	}
	return append(lines, lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", inner)))
}

// renderRow renders one conversation as ConversationRowHeight lines, each
// padded to inner cells.
func (l *ConversationList) renderRow(c inbox.Conversation, inner int, now time.Time) []string {
	marker := " "
	if c.ID == l.activeID {
		marker = lipgloss.NewStyle().Foreground(ColorPrimary).Render("▌")
	}

	icon := channelIcon(c.Channel)
	age := ConversationTimeStyle.Render(RelativeTime(c.LastActivity, now))
	nameWidth := max(inner-4-lipgloss.Width(age)-1, 4)
	name := runewidth.FillRight(runewidth.Truncate(c.ContactName, min(nameWidth, NameColumnWidth), "…"), nameWidth)
	line1 := marker + icon + " " + ConversationNameStyle.Render(name) + " " + age

	preview := strings.ReplaceAll(c.LastMessage, "\n", " ")
	line2 := marker + "  " + truncate(ConversationPreviewStyle.Render(preview), inner-3)

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme().PriorityColor(c.Priority.String()))).
		Render("◆ " + c.Priority.Label())
	line3 := marker + "  " + priority + "  " + ConversationTimeStyle.Render(string(c.Status))
	if c.Unread > 0 {
		line3 += "  " + UnreadBadgeStyle.Render(fmt.Sprintf("%d", c.Unread))
	}

	rows := []string{line1, line2, line3}
	for i, r := range rows {
		rows[i] = padRight(truncate(r, inner), inner)
	}
	return rows
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// visibleRows returns how many rows fit below the header
func (l *ConversationList) visibleRows(headerHeight int) int {
	return max((l.height-BorderSize-headerHeight)/ConversationRowHeight, 1)
}

func (l *ConversationList) ensureVisible(rows int) {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

// highlightRows paints the cursor row's background over already styled
// content, so per-span foreground colors survive.
func highlightRows(content string, width, from, to int) string {
	height := lipgloss.Height(content)
	if width <= 0 || height <= 0 || from >= height {
		return content
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(content).Draw(scr, area)

	bg := SidebarSelectedStyle.GetBackground()
	for y := from; y < to && y < height; y++ {
		for x := 0; x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Bg = bg
			scr.SetCell(x, y, cell)
		}
	}
	return scr.Render()
}

// View renders the list panel
func (l *ConversationList) View() string {
	inner := max(l.width-BorderSize, 1)
	header := l.headerLines(inner)

	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	rows := l.Visible()
	if len(rows) == 0 {
		msg := "Nenhuma conversa"
		if l.Query() != "" {
			msg = "Nenhum contato encontrado"
		}
		content := strings.Join(append(header, EmptyStateStyle.Render(msg)), "\n")
		return style.Width(l.width).Height(l.height).Render(content)
	}

	fit := l.visibleRows(len(header))
	l.ensureVisible(fit)
	now := l.now()

	var body []string
	end := min(l.offset+fit, len(rows))
	for _, c := range rows[l.offset:end] {
		body = append(body, l.renderRow(c, inner, now)...)
	}

	list := strings.Join(body, "\n")
	if l.focused {
		from := (l.cursor - l.offset) * ConversationRowHeight
		list = highlightRows(list, inner, from, from+ConversationRowHeight)
	}

	content := strings.Join(header, "\n") + "\n" + list
	return style.Width(l.width).Height(l.height).Render(content)
}
