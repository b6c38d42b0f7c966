package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/clinicadigital/omnidesk/internal/dashboard"
)

// cardsPerRow is how many metric cards share one line
const cardsPerRow = 4

// Panel draws a titled bordered box of the given outer width
func Panel(title, body string, width int) string {
	content := body
	if title != "" {
		content = PanelTitleStyle.Render(title) + "\n" + body
	}
	return PanelStyle.Width(width).Render(content)
}

// RenderCards lays the metric cards out in rows
func RenderCards(cards []dashboard.Card, width int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := min(cardsPerRow, len(cards))
	cardWidth := max(width/perRow, 16)

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		var row []string
		for _, c := range cards[start:end] {
			row = append(row, renderCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c dashboard.Card, width int) string {
	inner := max(width-BorderSize-2, 4)
	title := CardTitleStyle.Render(runewidth.Truncate(c.Icon+" "+c.Title, inner, "…"))
	value := CardValueStyle.Render(c.Value)
	if c.Trend != nil {
		trendStyle := TrendUpStyle
		if !c.Trend.Positive {
			trendStyle = TrendDownStyle
		}
		value += " " + trendStyle.Render(c.Trend.String())
	}
	sub := ConversationPreviewStyle.Render(runewidth.Truncate(c.Subtitle, inner, "…"))
	return CardStyle.Width(width).Render(title + "\n" + value + "\n" + sub)
}

// bar renders a horizontal bar scaled against peak
func bar(value, peak, width int, color string) string {
	if peak <= 0 || width <= 0 {
		return ""
	}
	n := value * width / peak
	if value > 0 && n == 0 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", n))
}

// RenderActivity draws received vs resolved messages per hour
func RenderActivity(rows []dashboard.HourlyActivity, width int) string {
	peak := dashboard.MaxMessages(rows)
	barWidth := min(max(width-24, 8), BarChartWidth)
	theme := CurrentTheme()

	var lines []string
	lines = append(lines, ChartLabelStyle.Render("Mensagens recebidas vs resolvidas"))
	for _, r := range rows {
		label := ChartLabelStyle.Render(fmt.Sprintf("%-5s", r.Hour))
		lines = append(lines,
			label+" "+bar(r.Messages, peak, barWidth, theme.Primary)+" "+fmt.Sprintf("%d", r.Messages),
			"      "+bar(r.Resolved, peak, barWidth, theme.Success)+" "+fmt.Sprintf("%d", r.Resolved),
		)
	}
	return Panel("Atividade por Hora", strings.Join(lines, "\n"), width)
}

// RenderChannels draws the message volume per channel
func RenderChannels(volumes []dashboard.ChannelVolume, width int) string {
	peak := 0
	for _, v := range volumes {
		peak = max(peak, v.Messages)
	}
	barWidth := min(max(width-26, 8), BarChartWidth)

	var lines []string
	for _, v := range volumes {
		label := runewidth.FillRight(runewidth.Truncate(v.Label, 10, "…"), 10)
		lines = append(lines, ChartLabelStyle.Render(label)+" "+bar(v.Messages, peak, barWidth, v.Color)+" "+fmt.Sprintf("%d", v.Messages))
	}
	return Panel("Distribuição por Canal", strings.Join(lines, "\n"), width)
}

func memberStatusColor(s dashboard.MemberStatus) string {
	theme := CurrentTheme()
	switch s {
	case dashboard.StatusOnline:
		return theme.Success
	case dashboard.StatusAway:
		return theme.Warning
	default:
		return theme.TextMuted
	}
}

// RenderTeam draws the team performance roster
func RenderTeam(members []dashboard.TeamMember, width int) string {
	summary := dashboard.Summarize(members)
	head := ChartLabelStyle.Render(fmt.Sprintf("Métricas em tempo real dos atendentes · %d/%d online · %d resolvidos hoje · %d%% performance",
		summary.Online, summary.Total, summary.ResolvedToday, summary.AveragePerformance))

	lines := []string{truncate(head, max(width-BorderSize, 1))}
	for _, m := range members {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(memberStatusColor(m.Status))).Render("●")
		name := runewidth.FillRight(runewidth.Truncate(m.Name, 18, "…"), 18)
		row := fmt.Sprintf("%s %s %s  %-10s  %d ativas  %s  %d resolvidas  ★ %.1f  %d%%",
			AvatarStyle.Render(m.Initials()),
			dot,
			ConversationNameStyle.Render(name),
			m.Status.Label(),
			m.ActiveChats,
			dashboard.FormatDuration(m.AvgResponse),
			m.ResolvedToday,
			m.Satisfaction,
			m.Performance(),
		)
		lines = append(lines, truncate(row, max(width-BorderSize, 1)))
	}
	return Panel("Performance da Equipe", strings.Join(lines, "\n"), width)
}

// RenderPlaceholder is shown for tabs that are not built yet
func RenderPlaceholder(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		PanelTitleStyle.Render("Em Desenvolvimento"),
		ConversationPreviewStyle.Render("Esta funcionalidade estará disponível em breve."),
	)
	return PanelStyle.
		Width(width).
		Height(height).
		Render(PlaceholderStyle.
			Width(max(width-BorderSize, 1)).
			Height(max(height-BorderSize, 1)).
			AlignVertical(lipgloss.Center).
			Render(body))
}
