package settings

// IntegrationStatus is the connection state of an external system
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationPending      IntegrationStatus = "pending"
)

func (s IntegrationStatus) Label() string {
	switch s {
	case IntegrationConnected:
		return "Conectado"
	case IntegrationPending:
		return "Pendente"
	default:
		return "Desconectado"
	}
}

// Integration is a read-only row on the settings tab
type Integration struct {
	Name   string            `json:"name"`
	Status IntegrationStatus `json:"status"`
}

// Integrations lists the clinic's external systems.
func Integrations() []Integration {
	return []Integration{
		{"WhatsApp Business", IntegrationConnected},
		{"Instagram Direct", IntegrationConnected},
		{"Facebook Messenger", IntegrationDisconnected},
		{"Gmail", IntegrationConnected},
		{"Sistema de Prontuário", IntegrationPending},
	}
}
