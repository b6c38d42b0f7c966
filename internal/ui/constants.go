package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidth is the fixed width of the navigation sidebar
	SidebarWidth = 30

	// ConversationListRatio is the denominator for the conversation list
	// width inside the inbox (1/3 of the content area)
	ConversationListRatio = 3

	// MinConversationListWidth keeps names readable on narrow terminals
	MinConversationListWidth = 28

	// ConversationRowHeight is the number of lines per conversation row
	ConversationRowHeight = 3

	// ComposeHeight is the number of lines for the message textarea
	ComposeHeight = 3

	// ComposeTotalHeight is the compose area including its border
	ComposeTotalHeight = ComposeHeight + BorderSize

	// ComposeCharLimit caps a message at this many graphemes
	ComposeCharLimit = 1000

	// NameColumnWidth is the fixed cell width of contact names in the list
	NameColumnWidth = 16

	// BubbleMaxRatio limits a message bubble to this fraction of the thread width
	BubbleMaxRatio = 0.7

	// MinTerminalWidth and MinTerminalHeight bound the layout
	MinTerminalWidth  = 80
	MinTerminalHeight = 20

	// BarChartWidth is the widest bar drawn in dashboard charts
	BarChartWidth = 30

	// RoleCardWidth is the width of one role option on the selector screen
	RoleCardWidth = 34
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 64

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 120

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
