package app

import (
	"slices"
	"testing"

	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/inbox"
	"github.com/clinicadigital/omnidesk/internal/ui"
	"github.com/clinicadigital/omnidesk/internal/ui/modals"
)

// =============================================================================
// ShortcutRegistry Tests
// =============================================================================

func TestShortcutRegistry_AllShortcutsHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("Shortcut %q has no handler", s.Key)
		}
		if s.Key == "" {
			t.Error("Shortcut has empty key")
		}
		if s.Description == "" {
			t.Errorf("Shortcut %q has no description", s.Key)
		}
	}
}

func TestShortcutRegistry_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		if seen[s.Key] {
			t.Errorf("Duplicate shortcut key: %q", s.Key)
		}
		seen[s.Key] = true
	}
	if seen[helpShortcut.Key] {
		t.Error("Help shortcut key '?' duplicated in registry")
	}
}

func TestShortcutRegistry_ValidCategories(t *testing.T) {
	for _, s := range slices.Concat(ShortcutRegistry, DisplayOnlyShortcuts) {
		if !slices.Contains(categoryOrder, s.Category) {
			t.Errorf("Shortcut %q has invalid category: %q", displayKey(s), s.Category)
		}
	}
}

func TestShortcutRegistry_NoDigitKeys(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if len(s.Key) == 1 && s.Key[0] >= '1' && s.Key[0] <= '9' {
			t.Errorf("Shortcut %q collides with the menu digits", s.Key)
		}
	}
}

// =============================================================================
// Applicability
// =============================================================================

func TestIsShortcutApplicable(t *testing.T) {
	copyShortcut, _ := shortcutForDisplayKey("y")
	editShortcut, _ := shortcutForDisplayKey("e")
	simShortcut, _ := shortcutForDisplayKey("s")

	tests := []struct {
		name     string
		role     controller.Role
		open     bool
		shortcut Shortcut
		want     bool
	}{
		{"copy without conversation", controller.RoleAttendant, false, copyShortcut, false},
		{"copy with conversation", controller.RoleAttendant, true, copyShortcut, true},
		{"copy on dashboard", controller.RoleManager, false, copyShortcut, false},
		{"edit off settings tab", controller.RoleManager, false, editShortcut, false},
		{"simulator without feed", controller.RoleManager, false, simShortcut, false},
		{"quit everywhere", controller.RoleManager, false, ShortcutRegistry[len(ShortcutRegistry)-1], true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, tt.role)
			if tt.open {
				if err := m.ctrl.SelectConversation("1"); err != nil {
					t.Fatalf("SelectConversation() error = %v", err)
				}
			}
			if got := m.isShortcutApplicable(tt.shortcut); got != tt.want {
				t.Errorf("isShortcutApplicable(%q) = %v, want %v", tt.shortcut.Key, got, tt.want)
			}
		})
	}
}

func TestExecuteShortcut_UnknownKey(t *testing.T) {
	m := testModel(t, controller.RoleManager)
	if _, _, handled := m.ExecuteShortcut("z"); handled {
		t.Error("unknown key should not be handled")
	}
}

func TestExecuteShortcut_BlockedWhileComposing(t *testing.T) {
	m := testModel(t, controller.RoleAttendant)
	sendKey(m, "enter")
	sendKey(m, "tab")

	if _, _, handled := m.ExecuteShortcut("q"); handled {
		t.Error("shortcuts must not run while the compose box has focus")
	}
	typeText(m, "q")
	if m.thread.InputValue() != "q" {
		t.Errorf("draft = %q, want the typed letter", m.thread.InputValue())
	}
}

func TestGetApplicableHelpSections(t *testing.T) {
	m := testModel(t, controller.RoleManager)
	sendKey(m, "5")

	sections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	want := []string{CategoryNavigation, CategorySettings, CategoryGeneral}
	if !slices.Equal(titles, want) {
		t.Errorf("sections = %v, want %v", titles, want)
	}
}

// =============================================================================
// Handlers
// =============================================================================

func TestShortcut_Quit(t *testing.T) {
	m := testModel(t, controller.RoleManager)
	if !isQuit(sendKey(m, "q")) {
		t.Error("'q' should quit")
	}
}

func TestShortcut_CycleTheme(t *testing.T) {
	m := testModel(t, controller.RoleManager)
	names := ui.ThemeNames()

	seen := map[ui.ThemeName]bool{ui.CurrentThemeName(): true}
	for range len(names) - 1 {
		sendKey(m, "t")
		seen[ui.CurrentThemeName()] = true
	}
	if len(seen) != len(names) {
		t.Errorf("visited %d themes, want %d", len(seen), len(names))
	}

	sendKey(m, "t")
	if ui.CurrentThemeName() != names[0] {
		t.Errorf("theme = %q, want wrap to %q", ui.CurrentThemeName(), names[0])
	}
}

func TestShortcut_ToggleNotifications(t *testing.T) {
	m := testModel(t, controller.RoleManager)

	sendKey(m, "n")
	if !m.config.GetNotificationsEnabled() {
		t.Fatal("'n' should enable notifications")
	}
	if got := footerFlash(m); got != "Notificações ativadas" {
		t.Errorf("flash = %q", got)
	}

	sendKey(m, "n")
	if m.config.GetNotificationsEnabled() {
		t.Error("second 'n' should disable notifications")
	}
}

func TestShortcut_ToggleSimulator(t *testing.T) {
	m := testModelWith(t, testConfig(), Options{Role: controller.RoleManager, Feed: &scriptedFeed{}})

	sendKey(m, "s")
	if m.config.SimulatorEnabled() {
		t.Error("'s' should pause the simulator")
	}
	if got := footerFlash(m); got != "Simulador pausado" {
		t.Errorf("flash = %q", got)
	}
}

func TestShortcut_SearchOnlyOnInbox(t *testing.T) {
	m := testModel(t, controller.RoleManager)

	sendKey(m, "/")
	if m.list.IsSearching() {
		t.Error("'/' should not search outside the inbox")
	}

	sendKey(m, "2")
	sendKey(m, "/")
	if !m.list.IsSearching() {
		t.Error("'/' should search on the inbox")
	}
}

func TestShortcut_CopyWithoutConversation(t *testing.T) {
	m := testModel(t, controller.RoleAttendant)

	if _, _, handled := m.ExecuteShortcut("y"); handled {
		t.Error("'y' needs an open conversation")
	}
}

func TestShortcut_BackToMenu(t *testing.T) {
	m := testModel(t, controller.RoleManager)
	sendKey(m, "5")

	sendKey(m, "b")

	if m.ctrl.Tab() != controller.TabDashboard {
		t.Errorf("Tab() = %q, want dashboard", m.ctrl.Tab())
	}
}

func TestShortcut_Help(t *testing.T) {
	m := testModel(t, controller.RoleAttendant)

	sendKey(m, "?")

	if _, ok := m.modal.State.(*modals.HelpState); !ok {
		t.Fatalf("modal state = %T, want *modals.HelpState", m.modal.State)
	}
	m.RenderToString()
	if got := m.footer.Bindings(); len(got) == 0 || got[0].Desc != "executar" {
		t.Errorf("footer bindings = %v, want help bindings", got)
	}
}

func TestShortcut_Resolve(t *testing.T) {
	m := testModel(t, controller.RoleAttendant)

	// Needs an open conversation
	sendKey(m, "r")
	if conv, _ := m.ctrl.Conversations().Get("1"); conv.Status == inbox.StatusResolved {
		t.Fatal("'r' without an open conversation should not resolve anything")
	}

	sendKey(m, "enter")
	sendKey(m, "r")

	conv, _ := m.ctrl.Conversations().Get("1")
	if conv.Status != inbox.StatusResolved {
		t.Errorf("status = %q, want resolved", conv.Status)
	}
	if got := footerFlash(m); got != "Conversa com Maria Santos finalizada" {
		t.Errorf("flash = %q", got)
	}
}
