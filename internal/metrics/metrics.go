// Package metrics counts inbox activity for the dashboard panels.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/errors"
)

const (
	directionInbound  = "inbound"
	directionOutbound = "outbound"
)

// Recorder bundles the Prometheus collectors of one dashboard session. It uses
// a private registry so several sessions (and tests) never share counters.
type Recorder struct {
	registry   *prometheus.Registry
	messages   *prometheus.CounterVec
	selections prometheus.Counter
	rejections *prometheus.CounterVec
	unread     prometheus.Gauge
}

// New creates a recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omnidesk_messages_total",
				Help: "Messages appended to conversation threads.",
			},
			[]string{"channel", "direction"},
		),
		selections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "omnidesk_conversation_selections_total",
			Help: "Conversations opened from the inbox.",
		}),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omnidesk_rejected_actions_total",
				Help: "Dashboard actions rejected, by error kind.",
			},
			[]string{"kind"},
		),
		unread: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "omnidesk_unread_messages",
			Help: "Unread messages across all conversations.",
		}),
	}
	r.registry.MustRegister(r.messages, r.selections, r.rejections, r.unread)
	return r
}

// Gatherer exposes the private registry
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

func (r *Recorder) MessageSent(ch channel.ID) {
	r.messages.WithLabelValues(string(ch), directionOutbound).Inc()
}

func (r *Recorder) MessageReceived(ch channel.ID) {
	r.messages.WithLabelValues(string(ch), directionInbound).Inc()
}

func (r *Recorder) ConversationSelected() { r.selections.Inc() }

func (r *Recorder) Rejected(kind errors.Kind) {
	r.rejections.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) SetUnread(n int) { r.unread.Set(float64(n)) }

// Counts is a point-in-time read of the recorder.
type Counts struct {
	Inbound    map[channel.ID]int
	Outbound   map[channel.ID]int
	Selections int
	Rejections map[string]int
	Unread     int
}

// ByChannel sums both directions per channel.
func (c Counts) ByChannel() map[channel.ID]int {
	out := make(map[channel.ID]int, len(c.Inbound)+len(c.Outbound))
	for ch, n := range c.Inbound {
		out[ch] += n
	}
	for ch, n := range c.Outbound {
		out[ch] += n
	}
	return out
}

// Messages returns the total of both directions
func (c Counts) Messages() int {
	total := 0
	for _, n := range c.ByChannel() {
		total += n
	}
	return total
}

// Counts gathers the registry into plain maps.
func (r *Recorder) Counts() (Counts, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Counts{}, errors.E(errors.Op("metrics.Counts"), errors.KindIO, err)
	}

	c := Counts{
		Inbound:    make(map[channel.ID]int),
		Outbound:   make(map[channel.ID]int),
		Rejections: make(map[string]int),
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "omnidesk_messages_total":
				ch := channel.ID(label(m, "channel"))
				n := int(m.GetCounter().GetValue())
				if label(m, "direction") == directionInbound {
					c.Inbound[ch] += n
				} else {
					c.Outbound[ch] += n
				}
			case "omnidesk_conversation_selections_total":
				c.Selections = int(m.GetCounter().GetValue())
			case "omnidesk_rejected_actions_total":
				c.Rejections[label(m, "kind")] = int(m.GetCounter().GetValue())
			case "omnidesk_unread_messages":
				c.Unread = int(m.GetGauge().GetValue())
			}
		}
	}
	return c, nil
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
