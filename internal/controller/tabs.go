package controller

// Tab is a top-level dashboard view
type Tab string

const (
	TabNone      Tab = ""
	TabDashboard Tab = "dashboard"
	TabInbox     Tab = "inbox"
	TabTeam      Tab = "team"
	TabMetrics   Tab = "metrics"
	TabSettings  Tab = "settings"
	TabHistory   Tab = "history"
	TabCalendar  Tab = "calendar"
)

// MenuItem is one sidebar entry
type MenuItem struct {
	Tab   Tab    `json:"tab"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// permissions is the role to menu table. Order is sidebar order and the
// first entry is the role's landing tab.
var permissions = map[Role][]MenuItem{
	RoleManager: {
		{TabDashboard, "Dashboard", "▤"},
		{TabInbox, "Caixa de Entrada", "✉"},
		{TabTeam, "Equipe", "☺"},
		{TabMetrics, "Métricas", "▲"},
		{TabSettings, "Configurações", "⚙"},
	},
	RoleAttendant: {
		{TabInbox, "Caixa de Entrada", "✉"},
		{TabHistory, "Histórico", "↺"},
		{TabCalendar, "Agenda", "◷"},
	},
}

var titles = map[Tab]string{
	TabDashboard: "Dashboard Executivo",
	TabInbox:     "Caixa de Entrada",
	TabTeam:      "Gerenciamento de Equipe",
	TabMetrics:   "Análise de Métricas",
	TabSettings:  "Configurações do Sistema",
}

// Menu returns the sidebar entries for a role.
func Menu(r Role) []MenuItem {
	return append([]MenuItem(nil), permissions[r]...)
}

// Tabs returns the tabs a role may open, in menu order.
func Tabs(r Role) []Tab {
	items := permissions[r]
	tabs := make([]Tab, len(items))
	for i, item := range items {
		tabs[i] = item.Tab
	}
	return tabs
}

// Allowed reports whether role r may open tab.
func Allowed(r Role, tab Tab) bool {
	for _, item := range permissions[r] {
		if item.Tab == tab {
			return true
		}
	}
	return false
}

// DefaultTab is where a role lands after the selector.
func DefaultTab(r Role) Tab {
	items := permissions[r]
	if len(items) == 0 {
		return TabNone
	}
	return items[0].Tab
}

// Title returns the header title of a tab. Tabs without a dedicated view
// share the generic system title.
func (t Tab) Title() string {
	if title, ok := titles[t]; ok {
		return title
	}
	return "Sistema Omnichannel"
}

// Label returns the menu label of a tab
func (t Tab) Label() string {
	for _, items := range permissions {
		for _, item := range items {
			if item.Tab == t {
				return item.Label
			}
		}
	}
	return string(t)
}
