package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"
	"tourcrm/config"
	"tourcrm/infras/kafka"
	"tourcrm/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeLeadCreated      = "lead.created"
	TypeLeadStatusMoved  = "lead.status_moved"
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeMessageReceived  = "message.received"
)

// Event is the envelope published for every notable CRM change. Downstream
// consumers key on OrganizationID so one topic serves every tenant.
type Event struct {
	Type           string    `json:"type"`
	OrganizationID string    `json:"organization_id"`
	EntityID       string    `json:"entity_id"`
	Payload        any       `json:"payload,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

// NewPublisher returns a Kafka backed publisher, or a no-op one when the
// broker integration is disabled. Local installs run without a broker.
func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.CRMEvents,
	}
}

// Publish sends the event without blocking the caller's request. Delivery is
// best effort, a failed publish is logged and dropped.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := p.client.SendMessages(c, p.topic, kafka.Message{
			Key:   event.OrganizationID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("Failed to publish event")
		}
	}()
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Event) {}
