package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpModalMaxVisible is the list height of the help modal
const HelpModalMaxVisible = 16

type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem is a section header row; it never matches a filter.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))

	case helpShortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(14)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

// HelpState lists the keyboard shortcuts in a filterable bubbles list.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Atalhos de Teclado" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Digite para filtrar  Enter: aplicar  Esc: cancelar"
	}
	return "/: filtrar  ↑/↓: navegar  Esc: fechar"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize fits the list below the title and above the help line
func (s *HelpState) SetSize(width, height int) {
	const overhead = 4
	s.list.SetSize(width, max(height-overhead, 1))
}

// IsFiltering returns whether the user is typing a filter
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// SelectedShortcut returns the highlighted shortcut, or nil on a header
func (s *HelpState) SelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(helpShortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// NewHelpState builds the help list from sections
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, sc := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: sc})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}
	return &HelpState{list: l}
}
