// Package ui provides the visual components of the omnidesk dashboard.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (1 line): brand, tab title, open conversations    │
//	├──────────┬───────────────────────────────────────────────┤
//	│          │  Inbox: conversation list │ thread + compose  │
//	│ Sidebar  │  Dashboard: cards, charts, team               │
//	│ (menu,   │  Settings: current values, integrations       │
//	│ channels,│                                               │
//	│ profile) │                                               │
//	├──────────┴───────────────────────────────────────────────┤
//	│ Footer (1 line): key hints or a flash message            │
//	└──────────────────────────────────────────────────────────┘
//
// Before a role is chosen the whole screen is the RoleSelector.
//
// Components render from plain data (controller snapshots, dashboard
// datasets, settings) and keep only presentation state of their own: list
// cursor, search query, compose text and scroll position. Actions that change
// the inbox go through the controller in internal/app.
//
// Sizes are computed by ViewContext; styles are rebuilt from the active Theme
// by SetTheme, which also pushes them into the modals package.
package ui
