package notify

import (
	"context"

	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Event is the payload published for every booking state change. The notifier
// worker renders emails from it without another database read.
type Event struct {
	Type        string             `json:"type"`
	Reservation *model.Reservation `json:"reservation"`
}

// Notifier delivers booking notifications. Implementations are best-effort:
// the booking service never rolls back on a notification error.
type Notifier interface {
	NotifyCreated(ctx context.Context, reservation *model.Reservation) error
	NotifyCancelled(ctx context.Context, reservation *model.Reservation) error
}

type kafkaNotifier struct {
	producer *kafka.Producer
	source   string
	log      *logger.Logger
}

func NewKafkaNotifier(producer *kafka.Producer, source string, log *logger.Logger) Notifier {
	return &kafkaNotifier{
		producer: producer,
		source:   source,
		log:      log,
	}
}

func (n *kafkaNotifier) NotifyCreated(ctx context.Context, reservation *model.Reservation) error {
	return n.publish(ctx, EventBookingCreated, reservation)
}

func (n *kafkaNotifier) NotifyCancelled(ctx context.Context, reservation *model.Reservation) error {
	return n.publish(ctx, EventBookingCancelled, reservation)
}

func (n *kafkaNotifier) publish(ctx context.Context, eventType string, reservation *model.Reservation) error {
	// Keyed by room so events for one room stay ordered.
	msg, err := kafka.NewMessage(reservation.RoomID, eventType, n.source, Event{
		Type:        eventType,
		Reservation: reservation,
	})
	if err != nil {
		return err
	}

	if err := n.producer.Publish(ctx, msg); err != nil {
		return err
	}

	n.log.Debug("Booking event published",
		"event_type", eventType,
		"reservation_id", reservation.ID,
		"room_id", reservation.RoomID,
	)
	return nil
}
