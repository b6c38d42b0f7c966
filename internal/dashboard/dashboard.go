// Package dashboard supplies the executive dashboard panels: metric cards,
// hourly activity, channel distribution and the team roster. The baseline
// numbers come from a Provider; live inbox state is layered on top.
package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
)

// ActiveConversationsTitle is the card that tracks the live inbox.
const ActiveConversationsTitle = "Conversas Ativas"

// Trend is a percentage change shown next to a card value
type Trend struct {
	Value    string `json:"value"`
	Positive bool   `json:"positive"`
}

// String renders the trend with a leading plus for positive changes.
func (t Trend) String() string {
	if t.Positive {
		return "+" + t.Value
	}
	return t.Value
}

// Card is one headline metric
type Card struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
	Trend    *Trend `json:"trend,omitempty"`
}

// HourlyActivity is one bucket of the activity chart
type HourlyActivity struct {
	Hour     string `json:"hour"`
	Messages int    `json:"messages"`
	Resolved int    `json:"resolved"`
}

// ChannelVolume is one bar of the channel distribution chart
type ChannelVolume struct {
	Channel  channel.ID `json:"channel"`
	Label    string     `json:"label"`
	Color    string     `json:"color"`
	Messages int        `json:"messages"`
}

// MemberStatus is a team member's availability
type MemberStatus string

const (
	StatusOnline  MemberStatus = "online"
	StatusAway    MemberStatus = "away"
	StatusOffline MemberStatus = "offline"
)

// Label returns the Portuguese availability text
func (s MemberStatus) Label() string {
	switch s {
	case StatusOnline:
		return "Disponível"
	case StatusAway:
		return "Ausente"
	case StatusOffline:
		return "Offline"
	default:
		return "Desconhecido"
	}
}

// TeamMember is an attendant on the team panel
type TeamMember struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Role          string        `json:"role"`
	Status        MemberStatus  `json:"status"`
	ActiveChats   int           `json:"active_chats"`
	AvgResponse   time.Duration `json:"avg_response"`
	ResolvedToday int           `json:"resolved_today"`
	Satisfaction  float64       `json:"satisfaction"` // 0-5
}

// Performance converts satisfaction to a daily performance percentage.
func (m TeamMember) Performance() int {
	return int(math.Round(m.Satisfaction * 20))
}

// Initials returns up to two uppercase initials for the avatar.
func (m TeamMember) Initials() string {
	var out []rune
	start := true
	for _, r := range m.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start && len(out) < 2 {
			out = append(out, r)
		}
		start = false
	}
	return string(out)
}

// FormatDuration renders d as "2m 15s", the way response times are shown.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	if m == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}

// Provider supplies the baseline datasets.
type Provider interface {
	Cards() []Card
	Hourly() []HourlyActivity
	Channels() []ChannelVolume
	Team() []TeamMember
}

// InboxCounter is the slice of the conversation store the cards need.
type InboxCounter interface {
	Open() int
	TotalUnread() int
}

// Cards returns the provider's cards with the active-conversations card
// replaced by live inbox numbers.
func Cards(p Provider, inbox InboxCounter) []Card {
	cards := p.Cards()
	for i := range cards {
		if cards[i].Title != ActiveConversationsTitle || inbox == nil {
			continue
		}
		cards[i].Value = fmt.Sprintf("%d", inbox.Open())
		cards[i].Subtitle = fmt.Sprintf("%d mensagens aguardando resposta", inbox.TotalUnread())
	}
	return cards
}

// ChannelVolumes adds live per-channel message counts to the baseline.
// Channels missing from the baseline are appended in registry order.
func ChannelVolumes(p Provider, live map[channel.ID]int) []ChannelVolume {
	volumes := p.Channels()
	seen := make(map[channel.ID]bool, len(volumes))
	for i := range volumes {
		volumes[i].Messages += live[volumes[i].Channel]
		seen[volumes[i].Channel] = true
	}
	for _, ch := range channel.List() {
		if !seen[ch.ID] && live[ch.ID] > 0 {
			volumes = append(volumes, ChannelVolume{Channel: ch.ID, Label: ch.Label, Color: ch.Color, Messages: live[ch.ID]})
		}
	}
	return volumes
}

// TeamSummary aggregates the roster for the team panel header.
type TeamSummary struct {
	Total              int `json:"total"`
	Online             int `json:"online"`
	ActiveChats        int `json:"active_chats"`
	ResolvedToday      int `json:"resolved_today"`
	AveragePerformance int `json:"average_performance"`
}

// Summarize computes a TeamSummary.
func Summarize(members []TeamMember) TeamSummary {
	s := TeamSummary{Total: len(members)}
	perf := 0
	for _, m := range members {
		if m.Status == StatusOnline {
			s.Online++
		}
		s.ActiveChats += m.ActiveChats
		s.ResolvedToday += m.ResolvedToday
		perf += m.Performance()
	}
	if len(members) > 0 {
		s.AveragePerformance = int(math.Round(float64(perf) / float64(len(members))))
	}
	return s
}

// MaxMessages returns the tallest bucket, used to scale the chart.
func MaxMessages(rows []HourlyActivity) int {
	peak := 0
	for _, r := range rows {
		if r.Messages > peak {
			peak = r.Messages
		}
		if r.Resolved > peak {
			peak = r.Resolved
		}
	}
	return peak
}
