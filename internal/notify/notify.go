package notify

import (
	"context"

	"github.com/avialab/aircatalog/internal/kafka"
	"github.com/avialab/aircatalog/pkg/logger"
)

// Notifier handles catalog-change events on the worker side. Downstream
// consumers (partner feeds, ops channels) hang off this hook; for now the
// notification is a structured log line.
type Notifier struct {
	log logger.Logger
}

func NewNotifier(log logger.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Notify(_ context.Context, event kafka.AirlineEvent) error {
	n.log.Info("catalog change notification",
		"type", event.Type,
		"airline_id", event.AirlineID,
		"name", event.Name,
		"iata_code", event.IATACode,
		"icao_code", event.ICAOCode,
		"active", event.Active,
	)
	return nil
}
