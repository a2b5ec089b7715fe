package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/shared/constant"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const headerEventType = "event_type"

type Type string

const (
	TypeCreated  Type = "booking.created"
	TypeApproved Type = "booking.approved"
	TypeRejected Type = "booking.rejected"
)

// Event is the audit record written for every booking write.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	BookingID  string    `json:"booking_id"`
	ItemID     string    `json:"item_id"`
	BookerID   string    `json:"booker_id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(eventType Type, booking model.Booking, actor string, now time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		BookerID:   booking.BookerID,
		OwnerID:    booking.OwnerID,
		Status:     booking.Status.String(),
		Start:      booking.Start,
		End:        booking.End,
		Actor:      actor,
		OccurredAt: now,
	}
}

// TypeForDecision maps the status reached by an owner decision to its event.
func TypeForDecision(status model.Status) Type {
	if status == model.StatusApproved {
		return TypeApproved
	}

	return TypeRejected
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic.Booking,
		otel:   otel,
	}
}

// Publish keys messages by item so every event of one item lands on the same
// partition in order.
func (p *kafkaPublisher) Publish(ctx context.Context, evt Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", string(evt.Type))

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:     evt.ItemID,
		Value:   evt,
		Headers: map[string]string{headerEventType: string(evt.Type)},
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", evt.BookingID).Str("type", string(evt.Type)).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
