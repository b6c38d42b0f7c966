package demo

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/app"
	"github.com/clinicadigital/omnidesk/internal/config"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

// DemoTime is the wall clock every scenario runs at: a Monday afternoon,
// inside the default working hours, so relative times and automatic answers
// render the same on every run.
var DemoTime = time.Date(2025, 3, 10, 14, 34, 0, 0, time.UTC)

// fixedClock always reports the same instant
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// InboundDelay is the delay after an inbound message (default: 300ms)
	InboundDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		InboundDelay:     300 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string
	log               *slog.Logger
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
		log:    logger.WithComponent("demo"),
	}
}

// Model returns the model driven by the last Run, for inspection in tests.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	e.log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario. The simulator stays off:
// inbound traffic only arrives through scenario steps.
func (e *Executor) setup(scenario *Scenario) error {
	cfg := config.Default()
	cfg.SetSimulatorEnabled(false)
	cfg.SetNotificationsEnabled(false)
	if scenario.Setup.Theme != "" {
		cfg.Theme = scenario.Setup.Theme
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	m, err := app.New(cfg, app.Options{
		Version: "demo",
		Clock:   fixedClock{DemoTime},
		Role:    scenario.Setup.Role,
	})
	if err != nil {
		return err
	}
	e.model = m
	e.frames = []Frame{}
	e.currentAnnotation = ""

	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
	return nil
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepInbound:
		e.update(step.Inbound)
		e.captureFrame(index, e.config.InboundDelay)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current model state as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})

	// Clear annotation after capturing
	e.currentAnnotation = ""
}

// update feeds msg to the model. Returned commands (flash timers, cursor
// blinks) are dropped: frames are captured synchronously.
func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case "alt+enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	default:
		if r := []rune(key); len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
