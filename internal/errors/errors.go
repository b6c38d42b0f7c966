// Package errors provides structured error types for omnidesk.
// These errors carry the operation that failed and a Kind the view layer
// uses to decide how to surface the failure.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindEmptyContent
	KindForbiddenTab
	KindUnknownChannel
	KindInvalid
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindEmptyContent:
		return "empty content"
	case KindForbiddenTab:
		return "forbidden tab"
	case KindUnknownChannel:
		return "unknown channel"
	case KindInvalid:
		return "invalid"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for omnidesk.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Inbox errors
func ConversationNotFound(op Op, id string) error {
	return E(op, KindNotFound, fmt.Sprintf("conversation %s not found", id))
}

func DuplicateConversation(id string) error {
	return E(Op("inbox.Add"), KindInvalid, fmt.Sprintf("conversation %s already exists", id))
}

func EmptyContent(conversationID string) error {
	return E(Op("inbox.Send"), KindEmptyContent, fmt.Sprintf("message for conversation %s is empty", conversationID))
}

func NoActiveConversation() error {
	return E(Op("controller.SendMessage"), KindNotFound, "no conversation selected")
}

// Channel errors
func UnknownChannel(id string) error {
	return E(Op("channel.Lookup"), KindUnknownChannel, fmt.Sprintf("channel %q is not registered", id))
}

// Navigation errors
func ForbiddenTab(role, tab string) error {
	return E(Op("controller.ChangeTab"), KindForbiddenTab, fmt.Sprintf("tab %q is not available for role %s", tab, role))
}

func InvalidRole(role string) error {
	return E(Op("controller.ParseRole"), KindInvalid, fmt.Sprintf("unknown role %q", role))
}

func NotOnInbox(tab string) error {
	return E(Op("controller.SelectConversation"), KindInvalid, fmt.Sprintf("conversations can only be selected from the inbox (active tab: %s)", tab))
}

// Settings errors
func SettingsInvalid(reason string) error {
	return E(Op("settings.Validate"), KindInvalid, reason)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
