// Package demo drives the dashboard without a terminal. It holds the inbound
// traffic simulator used by the live TUI and the scripted scenarios that
// render deterministic frames for documentation and tests.
package demo

import (
	"time"

	"github.com/clinicadigital/omnidesk/internal/app"
	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/controller"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepInbound delivers a patient message from a channel.
	StepInbound
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// String returns the step name used in logs and errors
func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepKey:
		return "key"
	case StepTypeText:
		return "type"
	case StepInbound:
		return "inbound"
	case StepCapture:
		return "capture"
	case StepAnnotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepInbound
	Inbound app.InboundMsg

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Role skips the profile selector when set
	Role controller.Role

	// Theme name; empty keeps the default
	Theme string
}

// DefaultSetup starts at the profile selector with the default theme.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for i, step := range s.Steps {
		switch step.Type {
		case StepKey:
			if step.Key == "" {
				return &ValidationError{Field: "Steps", Message: "key step without a key", Index: i}
			}
		case StepInbound:
			if step.Inbound.ConversationID == "" && step.Inbound.Contact == "" {
				return &ValidationError{Field: "Steps", Message: "inbound step needs a conversation or a contact", Index: i}
			}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
	Index   int // offending step, for Field "Steps"
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Inbound delivers content into an existing conversation.
func Inbound(conversationID, content string) Step {
	return Step{
		Type:    StepInbound,
		Inbound: app.InboundMsg{ConversationID: conversationID, Content: content},
	}
}

// NewContact delivers the first message of a new contact on ch.
func NewContact(contact string, ch channel.ID, content string) Step {
	return Step{
		Type:    StepInbound,
		Inbound: app.InboundMsg{Contact: contact, Channel: ch, Content: content},
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
