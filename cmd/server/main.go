package main

import (
	"context"

	bookinghandler "roomly/internal/bookings/handler"
	bookingrepo "roomly/internal/bookings/repository"
	bookingservice "roomly/internal/bookings/service"
	bookingvalidator "roomly/internal/bookings/validator"
	"roomly/internal/notify"
	roomhandler "roomly/internal/rooms/handler"
	roomrepo "roomly/internal/rooms/repository"
	roomservice "roomly/internal/rooms/service"
	roomvalidator "roomly/internal/rooms/validator"
	userhandler "roomly/internal/users/handler"
	userrepo "roomly/internal/users/repository"
	userservice "roomly/internal/users/service"
	uservalidator "roomly/internal/users/validator"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafkaconfig "roomly/pkg/kafka/config"
)

const serviceName = "roomly-api"

func main() {
	cfg := config.Load(serviceName)
	cfg.SetMongo()

	reservationRepo := bookingrepo.NewMongoReservationRepository(cfg)
	lockRepo := bookingrepo.NewRoomLockRepository(cfg)
	roomRepo := roomrepo.NewMongoRoomRepository(cfg)
	userRepo := userrepo.NewMongoUserRepository(cfg)

	ensureIndexes(cfg, reservationRepo, lockRepo, roomRepo, userRepo)

	producer, err := kafka.NewProducer(kafkaconfig.Load(), cfg.BookingEventsTopic, cfg.BookingEventsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}()
	notifier := notify.NewKafkaNotifier(producer, serviceName, cfg.Log)

	roomSvc := roomservice.NewRoomService(roomRepo, roomvalidator.NewRoomValidator(), cfg)
	userSvc := userservice.NewUserService(userRepo, uservalidator.NewUserValidator(), cfg)

	reservationValidator := bookingvalidator.NewReservationValidator(cfg.Log, bookingvalidator.Policy{
		MinDurationMin: cfg.BookingMinDurationMin,
		MaxDurationMin: cfg.BookingMaxDurationMin,
		OpeningHour:    cfg.BookingOpeningHour,
		ClosingHour:    cfg.BookingClosingHour,
	})

	bookingSvc := bookingservice.NewBookingService(
		reservationRepo,
		lockRepo,
		roomSvc,
		userSvc,
		reservationValidator,
		notifier,
		cfg,
	)

	application := app.NewApplication(cfg)
	application.SetApp(
		bookinghandler.NewBookingHandler(bookingSvc, cfg),
		roomhandler.NewRoomHandler(roomSvc, cfg),
		userhandler.NewUserHandler(userSvc, cfg),
	)
	application.Run()
}

type indexed interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(cfg *config.Config, repos ...indexed) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	for _, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			cfg.Log.Fatal("Failed to create indexes", "error", err)
		}
	}
	cfg.Log.Info("Database indexes ensured")
}
