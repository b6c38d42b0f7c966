package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects the set of key hints the footer shows
type FooterMode int

const (
	FooterRoleSelect FooterMode = iota
	FooterInboxList
	FooterCompose
	FooterSearch
	FooterPanel // dashboard, team, metrics and placeholder tabs
	FooterSettings
	FooterModal
)

// bindingsByMode holds the key hints per footer mode
var bindingsByMode = map[FooterMode][]KeyBinding{
	FooterRoleSelect: {
		{Key: "←/→", Desc: "escolher perfil"},
		{Key: "enter", Desc: "entrar"},
		{Key: "q", Desc: "sair"},
	},
	FooterInboxList: {
		{Key: "↑/↓", Desc: "navegar"},
		{Key: "enter", Desc: "abrir"},
		{Key: "/", Desc: "buscar"},
		{Key: "tab", Desc: "responder"},
		{Key: "y", Desc: "copiar"},
		{Key: "1-9", Desc: "menu"},
		{Key: "q", Desc: "sair"},
	},
	FooterCompose: {
		{Key: "enter", Desc: "enviar"},
		{Key: "alt+enter", Desc: "nova linha"},
		{Key: "pgup/dn", Desc: "rolar"},
		{Key: "tab/esc", Desc: "voltar à lista"},
	},
	FooterSearch: {
		{Key: "digite", Desc: "filtrar"},
		{Key: "enter", Desc: "abrir"},
		{Key: "esc", Desc: "limpar"},
	},
	FooterPanel: {
		{Key: "↑/↓", Desc: "rolar"},
		{Key: "1-9", Desc: "menu"},
		{Key: "?", Desc: "ajuda"},
		{Key: "q", Desc: "sair"},
	},
	FooterSettings: {
		{Key: "e", Desc: "editar"},
		{Key: "b", Desc: "voltar ao menu"},
		{Key: "1-9", Desc: "menu"},
		{Key: "q", Desc: "sair"},
	},
	FooterModal: {
		{Key: "tab", Desc: "próximo campo"},
		{Key: "enter", Desc: "salvar"},
		{Key: "esc", Desc: "cancelar"},
	},
}

// FlashType determines the style of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient message shown in place of the key hints
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically to expire flash messages
type FlashTickMsg time.Time

// FlashTick returns a command that fires once a second
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	mode         FooterMode
	bindings     []KeyBinding // overrides the mode bindings when set
	flashMessage *FlashMessage
}

// NewFooter creates a new footer showing the role selector hints
func NewFooter() *Footer {
	return &Footer{mode: FooterRoleSelect}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode switches the key hints to the given context
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
}

// Mode returns the current footer context
func (f *Footer) Mode() FooterMode {
	return f.mode
}

// SetBindings allows custom keybindings. Nil restores the mode bindings.
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// Bindings returns the key hints currently displayed
func (f *Footer) Bindings() []KeyBinding {
	if f.bindings != nil {
		return f.bindings
	}
	return bindingsByMode[f.mode]
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash message, or nil
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) renderFlash() string {
	var icon string
	var style lipgloss.Style
	switch f.flashMessage.Type {
	case FlashError:
		icon, style = "✕", FlashErrorStyle
	case FlashWarning:
		icon, style = "⚠", FlashWarningStyle
	case FlashSuccess:
		icon, style = "✓", FlashSuccessStyle
	default:
		icon, style = "ℹ", FlashInfoStyle
	}
	return style.Render(icon + " " + f.flashMessage.Text)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
