// Package app wires the inbox stores, the controller and the ui components
// into one Bubble Tea model.
package app

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/config"
	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/dashboard"
	"github.com/clinicadigital/omnidesk/internal/inbox"
	"github.com/clinicadigital/omnidesk/internal/logger"
	"github.com/clinicadigital/omnidesk/internal/metrics"
	"github.com/clinicadigital/omnidesk/internal/settings"
	"github.com/clinicadigital/omnidesk/internal/ui"
)

// Focus represents which inbox panel receives keys
type Focus int

const (
	FocusList Focus = iota
	FocusCompose
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusList:
		return "List"
	case FocusCompose:
		return "Compose"
	default:
		return "Unknown"
	}
}

// InboundMsg delivers a patient message from a channel. An empty
// ConversationID starts a new conversation for Contact on Channel.
type InboundMsg struct {
	ConversationID string
	Contact        string
	Channel        channel.ID
	Content        string
	At             time.Time
}

// Feed produces inbound traffic. Next returns the command that delivers the
// following InboundMsg, or nil once the feed is exhausted.
type Feed interface {
	Next() tea.Cmd
}

// Options configures a Model. Zero values select the demo datasets and the
// system clock.
type Options struct {
	Version   string
	Clock     inbox.Clock
	Inbox     inbox.Provider
	Dashboard dashboard.Provider
	Feed      Feed
	Role      controller.Role // preselected role; skips the selector
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	clock   inbox.Clock

	ctrl     *controller.Controller
	settings *settings.Store
	metrics  *metrics.Recorder
	board    dashboard.Provider
	feed     Feed

	ctx     *ui.ViewContext
	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	list    *ui.ConversationList
	thread  *ui.Thread
	roles   *ui.RoleSelector
	modal   *ui.Modal
	panel   viewport.Model // scrolls the non-inbox tabs

	width  int
	height int
	focus  Focus

	log *slog.Logger
}

// New creates the app model. It fails when the inbox provider returns
// inconsistent data or the preselected role is not selectable.
func New(cfg *config.Config, opts Options) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	clock := opts.Clock
	if clock == nil {
		clock = inbox.SystemClock{}
	}
	provider := opts.Inbox
	if provider == nil {
		provider = inbox.DemoProvider{Clock: clock}
	}
	board := opts.Dashboard
	if board == nil {
		board = dashboard.DemoProvider{}
	}

	convs, threads, err := inbox.Load(provider, clock)
	if err != nil {
		return nil, err
	}

	rec := metrics.New()
	ctrl := controller.New(convs, threads)
	ctrl.SetRecorder(rec)

	panel := viewport.New()
	panel.MouseWheelEnabled = true

	m := &Model{
		config:   cfg,
		version:  opts.Version,
		clock:    clock,
		ctrl:     ctrl,
		settings: settings.NewStore(cfg.InitialSettings()),
		metrics:  rec,
		board:    board,
		feed:     opts.Feed,
		ctx:      ui.NewViewContext(),
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		list:     ui.NewConversationList(),
		thread:   ui.NewThread(),
		roles:    ui.NewRoleSelector(),
		modal:    ui.NewModal(),
		panel:    panel,
		focus:    FocusList,
		log:      logger.WithComponent("app"),
	}
	m.list.SetClock(clock.Now)

	if opts.Role != controller.RoleNone {
		if err := ctrl.ChooseRole(opts.Role); err != nil {
			return nil, err
		}
	}

	m.updateSizes()
	m.refresh()
	return m, nil
}

// Controller exposes the view controller (for snapshots and tests)
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}

// Settings exposes the settings store
func (m *Model) Settings() *settings.Store {
	return m.settings
}

// Metrics exposes the activity recorder
func (m *Model) Metrics() *metrics.Recorder {
	return m.metrics
}

// Focus returns which inbox panel has keyboard focus
func (m *Model) Focus() Focus {
	return m.focus
}

// Init starts the inbound feed when the simulator is enabled
func (m *Model) Init() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	m.log.Debug("starting inbound feed", "enabled", m.config.SimulatorEnabled())
	return m.nextFromFeed()
}

// refresh pushes the controller state into every component. Called after
// each action that may change it.
func (m *Model) refresh() {
	v := m.ctrl.Snapshot()
	s := m.settings.Get()

	m.header.SetTitle(v.Title)
	m.header.SetClinicName(s.ClinicName)
	m.header.SetActiveCount(v.OpenConversations, v.Role != controller.RoleNone)
	m.roles.SetClinicName(s.ClinicName)
	m.sidebar.SetState(v)

	waiting := m.ctrl.Conversations().CountByStatus()[inbox.StatusWaiting]
	m.list.SetConversations(v.Conversations, v.ActiveConversationID, waiting)

	if active, ok := m.ctrl.Conversations().Active(); ok {
		m.thread.SetConversation(&active, v.Thread)
	} else {
		m.thread.SetConversation(nil, nil)
		if m.focus == FocusCompose {
			m.setFocus(FocusList)
		}
	}

	m.refreshPanel()
	m.updateFooterMode()
}
