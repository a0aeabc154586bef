package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"roomly/internal/notify"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafkaconfig "roomly/pkg/kafka/config"
)

const serviceName = "roomly-notifier"

func main() {
	cfg := config.Load(serviceName)

	mailer := notify.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.SMTPFrom,
		cfg.Log,
	)

	handler := func(ctx context.Context, msg kafka.Message) error {
		var event notify.Event
		if err := msg.DecodeValue(&event); err != nil {
			cfg.Log.Error("Failed to decode booking event",
				"event_id", msg.GetEventID(),
				"error", err,
			)
			return err
		}

		cfg.Log.Info("Booking event received",
			"event_id", msg.GetEventID(),
			"event_type", event.Type,
		)
		return mailer.Send(event)
	}

	consumer, err := kafka.NewConsumer(
		kafkaconfig.Load(),
		cfg.BookingEventsTopic,
		cfg.NotifierGroupID,
		cfg.BookingEventsDLQTopic,
		handler,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Notifier started", "topic", cfg.BookingEventsTopic, "group_id", cfg.NotifierGroupID)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped gracefully")
}
