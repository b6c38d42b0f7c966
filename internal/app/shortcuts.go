package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/ui"
	"github.com/clinicadigital/omnidesk/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "y", "/")
	DisplayKey  string                              // Display name in help (e.g., "Tab"); defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Tab         controller.Tab                      // Only on this tab; TabNone means everywhere
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navegação"
	CategoryInbox      = "Caixa de Entrada"
	CategorySettings   = "Configurações"
	CategoryGeneral    = "Geral"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryInbox,
	CategorySettings,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Entries appear in the help modal and run from both key presses and the
// help modal. Digits are handled separately as menu positions.
var ShortcutRegistry = []Shortcut{
	// Inbox
	{
		Key:         "tab",
		DisplayKey:  "Tab",
		Description: "Responder conversa aberta",
		Category:    CategoryInbox,
		Tab:         controller.TabInbox,
		Handler:     shortcutFocusCompose,
		Condition:   hasActiveConversation,
	},
	{
		Key:         "/",
		Description: "Buscar contato",
		Category:    CategoryInbox,
		Tab:         controller.TabInbox,
		Handler:     shortcutSearch,
	},
	{
		Key:         "y",
		Description: "Copiar última mensagem",
		Category:    CategoryInbox,
		Tab:         controller.TabInbox,
		Handler:     shortcutCopyLast,
		Condition:   hasActiveConversation,
	},
	{
		Key:         "r",
		Description: "Finalizar conversa",
		Category:    CategoryInbox,
		Tab:         controller.TabInbox,
		Handler:     shortcutResolve,
		Condition:   hasActiveConversation,
	},

	// Settings
	{
		Key:         "e",
		Description: "Editar configurações",
		Category:    CategorySettings,
		Tab:         controller.TabSettings,
		Handler:     shortcutEditSettings,
	},
	{
		Key:         "b",
		Description: "Voltar ao menu",
		Category:    CategorySettings,
		Tab:         controller.TabSettings,
		Handler:     shortcutBackToMenu,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:         "t",
		Description: "Alternar tema",
		Category:    CategoryGeneral,
		Handler:     shortcutCycleTheme,
	},
	{
		Key:         "n",
		Description: "Ativar/desativar notificações",
		Category:    CategoryGeneral,
		Handler:     shortcutToggleNotifications,
	},
	{
		Key:         "s",
		Description: "Pausar/retomar simulador",
		Category:    CategoryGeneral,
		Handler:     shortcutToggleSimulator,
		Condition:   func(m *Model) bool { return m.feed != nil },
	},
	{
		Key:         "q",
		Description: "Sair",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Mostrar atalhos",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "1-9", Description: "Ir para item do menu", Category: CategoryNavigation},
	{DisplayKey: "↑/↓ ou j/k", Description: "Navegar na lista / rolar painel", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Abrir conversa / enviar mensagem", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Limpar busca / voltar à lista", Category: CategoryNavigation},
	{DisplayKey: "alt+enter", Description: "Nova linha na mensagem", Category: CategoryInbox, Tab: controller.TabInbox},
	{DisplayKey: "PgUp/PgDn", Description: "Rolar mensagens", Category: CategoryInbox, Tab: controller.TabInbox},
}

func hasActiveConversation(m *Model) bool {
	return m.ctrl.ActiveConversationID() != ""
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.Tab != controller.TabNone && s.Tab != m.ctrl.Tab() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if m.focus == FocusCompose || m.list.IsSearching() {
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "tab", m.ctrl.Tab())
			return m, nil, false
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range slices.Concat(registry, displayOnly) {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// shortcutForDisplayKey resolves a help modal row back to its registry entry
func shortcutForDisplayKey(key string) (Shortcut, bool) {
	for _, s := range ShortcutRegistry {
		if displayKey(s) == key {
			return s, true
		}
	}
	return Shortcut{}, false
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutFocusCompose(m *Model) (tea.Model, tea.Cmd) {
	return m, m.setFocus(FocusCompose)
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.list.EnterSearch()
	m.updateFooterMode()
	return m, cmd
}

func shortcutCopyLast(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyLastMessage()
}

func shortcutResolve(m *Model) (tea.Model, tea.Cmd) {
	conv, err := m.ctrl.ResolveConversation()
	if err != nil {
		return m, m.flashError(err)
	}
	m.refresh()
	return m, m.ShowFlashSuccess("Conversa com " + conv.ContactName + " finalizada")
}

func shortcutEditSettings(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewSettingsState(m.settings.Get()))
	return m, nil
}

func shortcutBackToMenu(m *Model) (tea.Model, tea.Cmd) {
	return m, m.changeTab(controller.TabDashboard)
}

func shortcutCycleTheme(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	next := names[0]
	if i := slices.Index(names, ui.CurrentThemeName()); i >= 0 {
		next = names[(i+1)%len(names)]
	}
	ui.SetTheme(next)
	m.refresh()
	return m, m.ShowFlashInfo("Tema: " + ui.CurrentTheme().Name)
}

func shortcutToggleNotifications(m *Model) (tea.Model, tea.Cmd) {
	enabled := !m.config.GetNotificationsEnabled()
	m.config.SetNotificationsEnabled(enabled)
	if enabled {
		return m, m.ShowFlashInfo("Notificações ativadas")
	}
	return m, m.ShowFlashInfo("Notificações desativadas")
}

func shortcutToggleSimulator(m *Model) (tea.Model, tea.Cmd) {
	enabled := !m.config.SimulatorEnabled()
	m.config.SetSimulatorEnabled(enabled)
	if enabled {
		return m, m.ShowFlashInfo("Simulador retomado")
	}
	return m, m.ShowFlashInfo("Simulador pausado")
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	all := append(slices.Clone(ShortcutRegistry), helpShortcut)
	sections := m.getApplicableHelpSections(all, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpState(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
