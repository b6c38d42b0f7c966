package dashboard

import (
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
)

// DemoProvider serves the clinic's sample numbers.
type DemoProvider struct{}

func (DemoProvider) Cards() []Card {
	return []Card{
		{Title: ActiveConversationsTitle, Value: "28", Subtitle: "Aguardando resposta", Icon: "✉",
			Trend: &Trend{Value: "12%", Positive: true}},
		{Title: "Tempo Médio Resposta", Value: "2m 15s", Subtitle: "Meta: 5 minutos", Icon: "◷",
			Trend: &Trend{Value: "8%", Positive: false}},
		{Title: "Atendentes Online", Value: "6", Subtitle: "De 8 no total", Icon: "☺"},
		{Title: "Consultas Agendadas", Value: "45", Subtitle: "Hoje", Icon: "✓",
			Trend: &Trend{Value: "23%", Positive: true}},
	}
}

func (DemoProvider) Hourly() []HourlyActivity {
	return []HourlyActivity{
		{"08:00", 12, 8},
		{"09:00", 25, 18},
		{"10:00", 35, 28},
		{"11:00", 42, 35},
		{"12:00", 18, 15},
		{"13:00", 22, 20},
		{"14:00", 38, 32},
		{"15:00", 45, 38},
		{"16:00", 52, 45},
		{"17:00", 35, 30},
	}
}

func (DemoProvider) Channels() []ChannelVolume {
	baseline := map[channel.ID]int{
		channel.WhatsApp:  156,
		channel.Instagram: 89,
		channel.Email:     45,
		channel.Website:   23,
	}
	var out []ChannelVolume
	for _, ch := range channel.List() {
		out = append(out, ChannelVolume{Channel: ch.ID, Label: ch.Label, Color: ch.Color, Messages: baseline[ch.ID]})
	}
	return out
}

func (DemoProvider) Team() []TeamMember {
	return []TeamMember{
		{ID: "1", Name: "Ana Costa", Role: "Atendente Senior", Status: StatusOnline,
			ActiveChats: 5, AvgResponse: 90 * time.Second, ResolvedToday: 12, Satisfaction: 4.8},
		{ID: "2", Name: "Carlos Santos", Role: "Atendente", Status: StatusOnline,
			ActiveChats: 3, AvgResponse: 135 * time.Second, ResolvedToday: 8, Satisfaction: 4.6},
		{ID: "3", Name: "Lucia Ferreira", Role: "Atendente Senior", Status: StatusAway,
			ActiveChats: 2, AvgResponse: 105 * time.Second, ResolvedToday: 15, Satisfaction: 4.9},
		{ID: "4", Name: "Pedro Lima", Role: "Atendente", Status: StatusOffline,
			ActiveChats: 0, AvgResponse: 200 * time.Second, ResolvedToday: 6, Satisfaction: 4.3},
	}
}
